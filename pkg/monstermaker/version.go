// Package monstermaker holds module-wide constants.
package monstermaker

// Version is the release version of the monstermaker module.
const Version = "0.1.0"
