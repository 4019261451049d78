// Package fontpack acquires and serves the typefaces used to draw the
// social preview image.
//
// The Japanese display font (Noto Sans JP) is downloaded once from Google
// Fonts and kept as an artifact in the output directory; later runs reuse
// it. When the download fails, drawing degrades to the bundled Go Regular
// font and finally to a fixed-size bitmap face, so font trouble never fails
// a site generation run.
package fontpack
