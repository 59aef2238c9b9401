// Package fileutil enumerates the paths g scans when no input is named.
//
// WalkAll walks a directory tree recursively and returns every entry below
// the root, files and directories alike, as absolute paths sorted
// alphabetically. Nothing is filtered by type, extension or name: hidden
// entries are included and deciding what can be read is left to the scanner.
//
// Walking is error tolerant. An entry that cannot be stat'd or read
// (permission denied, a broken symlink, a directory that vanished) is
// recorded in WalkResult.Errors and skipped, and the walk continues. Only a
// root that cannot be accessed at all is fatal.
//
//	result, err := fileutil.WalkAll(cwd)
//	if err != nil {
//	    return err
//	}
//	for _, path := range result.Paths {
//	    fmt.Println(path)
//	}
package fileutil
