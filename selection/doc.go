// SPDX-License-Identifier: Unlicense OR MIT

/*
Package selection holds the interaction state of the option widgets in
package component.

Like the types in gioui.org/widget, the state is owned by the program and
must survive between frames, because gesture state such as a pending press
is tracked across events. The state never includes the selection itself:
the program keeps the current value, passes it to the widgets every frame,
and updates it when an activation callback reports a new value. A set of
options is mutually exclusive only because the program stores a single
current value.
*/
package selection
