// Package export provides pure functions for styling and laying out a slogan
// artwork before it is rendered.
//
// Nothing here touches an image or a file. The renderers in
// internal/shell/render turn a StyleConfig and a Layout into PNG or PDF bytes.
//
// # Functions
//
//   - DefaultStyle / Normalize / Validate: Style configuration and its limits
//   - ParseHexColor: Parse #RGB and #RRGGBB colors
//   - PlanLayout / WrapText / FitInside: Geometry shared by all renderers
//   - Filename / PlainText: Download naming and the plain-text artifact
package export
