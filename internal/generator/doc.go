// Package generator turns a ranked match into the parts of a reframe: the
// governing theme, the optional chemical angle, an action step, an
// affirmation and a closing line. Every generator is a pure, total function
// of its inputs.
package generator
