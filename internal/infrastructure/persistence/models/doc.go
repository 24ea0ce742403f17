// Package models contains the GORM persistence models that map domain
// aggregates to database tables. Models are a persistence concern only;
// domain code never imports this package.
package models
