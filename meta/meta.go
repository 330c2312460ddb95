// meta/meta.go
package meta

// ROUNDS is the number of scripted rounds of a full game.
const ROUNDS = 12

// GRID_COLUMNS is the width of a player's cave and forest boards.
const GRID_COLUMNS = 4

// GRID_SLOTS is the number of positions on a player's cave and forest boards.
const GRID_SLOTS = 16

// START_GNOMES is the number of gnomes each player starts with.
const START_GNOMES = 2

// FOOD_PER_GNOME is the food an adult gnome eats at a normal feeding.
const FOOD_PER_GNOME = 2

// FOOD_PER_CHILD is the food a newborn eats at a normal feeding.
const FOOD_PER_CHILD = 1

// FINE_PENALTY is the score lost for every begging marker.
const FINE_PENALTY = 3

// MISSING_ANIMAL_PENALTY is the score lost for every tribal animal type a player lacks.
const MISSING_ANIMAL_PENALTY = 2

// MAX_WARRIOR_LEVEL caps a forged weapon.
const MAX_WARRIOR_LEVEL = 14

// TOURNAMENT_GAMES is the default number of games per tournament.
const TOURNAMENT_GAMES = 10
