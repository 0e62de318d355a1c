// Package files provides file system discovery and rewrite helpers for csvfleet.
//
// This package contains two main components:
//
// Discovery: expands a path into the data files it addresses. A path may name
// a single file, a directory (every regular file inside it) or a glob pattern.
//
// Manager: basic file management with an atomic replace (temp file + rename)
// used when a CSV file is rewritten in place.
//
// Example usage:
//
//	discovery := files.NewDiscovery("")
//	paths, err := discovery.Iterate("data/*.csv")
//
//	manager := files.NewManager("")
//	err = manager.WriteAtomic("data/plant.csv", func(w io.Writer) error {
//	    _, err := io.WriteString(w, "a,b\n")
//	    return err
//	})
package files
