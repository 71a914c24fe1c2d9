// Package colorutil provides conversion and distance helpers shared by the
// store and the resolver: hex to RGB conversion and back, plus the Manhattan distance
// metric. It deliberately stops at hex notation; there is no color-space
// math here.
package colorutil
