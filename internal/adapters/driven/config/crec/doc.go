// Package crec reads the project descriptor file written by the desktop
// cataloguing tool. The descriptor is a flat "key,value" text file that
// names the data root and the display labels for the record fields.
package crec
