// Package template defines the rendering seam between chart renderers and
// the template engine. Renderers depend on the TemplateRenderer interface;
// the pongo2-backed implementation lives in the gotemplate subpackage.
package template
