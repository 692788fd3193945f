// Package blobstore defines the key/value object store boundary. The store
// is used as a pseudo-database: media blobs and JSON metadata sidecars live
// under fixed key namespaces with no transaction spanning the two.
package blobstore

// Key namespaces per artifact kind.
const (
	VideoPrefix     = "videos/"
	ThumbnailPrefix = "thumbnails/"
	MetaPrefix      = "meta/"
)
