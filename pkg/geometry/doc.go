/*
Package geometry provides the integer grid coordinates used by the recognizer.

A Point addresses one character of a canvas (or one cell of a plane) and a Rect is an
axis-aligned, half-open rectangle of such points: Top and Left are inclusive, Bottom and
Right are exclusive.
*/
package geometry
