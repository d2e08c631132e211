// Package landing contains the content types shown on the landing page.
//
// It defines the statistics, services, projects and testimonials that sections
// animate, with Clone helpers so sections never share slices with the loader.
package landing
