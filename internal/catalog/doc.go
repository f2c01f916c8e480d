// Package catalog reads collection folders from the project data root.
//
// The on-disk layout is produced by an external desktop cataloguing tool
// and treated as read-only:
//
//	<data root>/
//	  <collection id>/
//	    index.txt        metadata, one "key,value" pair per line
//	    comment.txt      optional multi-line comment
//	    pictures/        image files
//	    data/            other files
//	    SystemData/      tool-internal files (thumbnail etc.), never indexed
//
// The scanner implements driven.CatalogScanner. All filesystem access in
// the application happens here and in the file-serving adapter; a search
// request never touches the disk.
package catalog
