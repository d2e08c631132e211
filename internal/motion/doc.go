// Package motion holds static animation timelines: how long an entry animation
// lasts, when it starts and which pose it moves between. Descriptors carry no
// control flow; renderers sample them with At.
package motion
