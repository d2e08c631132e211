// Package carousel keeps a wrap-around index over a fixed, non-empty sequence.
//
// The project gallery shows a sliding window of cards starting at the current
// index; the testimonial slider shows a single item with a fixed slide transition.
package carousel
