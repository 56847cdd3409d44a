// Package pspp abstracts the survey export files produced by PSPP/SPSS:
// a coded values CSV, a labelled values CSV with the same shape, and the
// free-text variable-definitions dump produced by DISPLAY LABELS. The
// package defines the Source/Bundle/Documents wrappers plus the Loader and
// Parser contracts; the built-in implementations live under internal/pspp.
package pspp
