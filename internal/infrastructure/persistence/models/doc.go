// Package models holds the GORM persistence models backing the domain
// entities. Domain types stay free of ORM tags; each model here carries the
// table mapping and converts to and from its domain counterpart. List-valued
// fields (requested services, technologies, features) are stored as JSON
// text columns.
package models
