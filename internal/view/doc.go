// Package view holds the viewer's application state.
//
// A [Session] owns the loaded dataset, the filter toggle, the sample-axis
// window shared by both plots and one [Panel] per plot. Every UI event is
// translated into a Session call; the Session recomputes the affected
// panels and the UI renders whatever the panels report.
//
// Each panel moves between three modes: nothing selected, raw traces and
// filtered traces. Selection changes and the filter toggle are the only
// triggers. A redraw keeps the shared sample window, rebuilds the legend and
// fits the value axis to the visible samples.
package view
