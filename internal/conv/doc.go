// Package conv coerces loosely typed values, such as CLI arguments and
// decoded YAML or JSON nodes, into a concrete Go type. Convert tries direct
// assignment and numeric conversion before falling back to a JSON round
// trip.
package conv
