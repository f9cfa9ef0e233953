package ui

// Banner is the static logo drawn in the status bar. Kept narrow enough to
// fit the 32-cell logo block.
const Banner = `┬┌─┬ ┬┌┐ ┌─┐┌┬┐┌─┐┌─┐┬ ┬
├┴┐│ │├┴┐├┤  ││├─┤└─┐├─┤
┴ ┴└─┘└─┘└─┘─┴┘┴ ┴└─┘┴ ┴`
