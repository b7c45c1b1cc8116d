// Package model defines the post record shared by the ingest, store,
// processing and ranking layers.
package model
