// Package manifest loads and checks previously generated manifest files.
//
// # Manifest Format
//
// A manifest is the indented JSON document written by the generator:
//
//	{
//	  "generated": "2026-10-16T08:30:00.000Z",
//	  "count": 1,
//	  "reports": [
//	    {
//	      "name": "x.html",
//	      "path": "report/storeA/x.html",
//	      "store": "storeA",
//	      "size": 1024,
//	      "modified": "2026-10-15T17:02:11.000Z"
//	    }
//	  ]
//	}
//
// A gzip-compressed copy (manifest.json.gz) is read transparently.
//
// # Usage
//
//	loader := manifest.NewLoader(afero.NewOsFs())
//	m, err := loader.Load("manifest.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = manifest.Verify(m, manifest.VerifyOptions{ReportsLabel: "report"})
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: manifest file does not exist
//   - ErrInvalidFormat: file is not valid JSON
//   - ErrUnsupportedExt: unsupported file extension
//   - ErrCountMismatch: count differs from the number of reports
//   - ErrNotSorted: reports are not ordered by name
//   - ErrInvalidEntry: an entry has a bad name, path, or size
//   - ErrMissingReport: an entry points at a file that no longer exists
package manifest
