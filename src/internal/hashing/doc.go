// Package hashing calculates MD5 checksums of data while it is being read.
//
// The settings loader reads the TOML document through a ChecksumReaderProxy
// so the checksum of exactly the bytes that were translated can be logged
// and reported by self-check:
//
//	content, checksum, err := hashing.ReadAllWithChecksum(file)
//	if err != nil {
//	    return err
//	}
//	log.Debugf("Read %d bytes, MD5: %s", len(content), checksum)
package hashing
