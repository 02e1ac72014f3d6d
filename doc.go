// Package exifcore implements the TIFF/IFD traversal engine and the
// EXIF-specific handler that drives it, including dispatch for dozens
// of vendor-specific makernote dialects.
//
// The container layer (JPEG/PNG/QuickTime segment walking) and the
// non-TIFF metadata readers (IPTC, ICC, XMP, Photoshop) are external
// collaborators, invoked through the narrow interfaces in external.go.
// Apart from the minimal DefaultIPTCReader, they are not implemented here.
package exifcore
