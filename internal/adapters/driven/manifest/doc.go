// Package manifest decodes shape manifests into domain shapes.
//
// A manifest is a document with a "shapes" list. Every entry names its
// kind and gives its points in the same "x,y" text the CLI accepts:
//
//	shapes:
//	  - kind: rectangle
//	    top_right: "10,10"
//	    bottom_left: "0,0"
//	  - kind: circle
//	    center: "5,5"
//	    radius: 5
//	  - kind: vector
//	    start: "0,0"
//	    end: "10,10"
//
// YAML, TOML ([[shapes]] tables) and JSON share this layout.
// Decoders work on bytes already in memory; callers read the file.
package manifest
