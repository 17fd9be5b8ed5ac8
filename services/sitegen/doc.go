// Package sitegen turns a storefront catalog into the static pages of
// the Magnet Moments Co. site.
//
// A sync writes a json snapshot of the catalog and one detail page per
// product, then splices card grids into the shop and home pages between
// marker comments. Syncing an unchanged catalog leaves every file
// byte-identical.
package sitegen
