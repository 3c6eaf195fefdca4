package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

// ChecksumReaderProxy is a proxy that calculates the MD5 checksum of data as it's read.
type ChecksumReaderProxy struct {
	reader      io.Reader
	checksum    hash.Hash
	checksumErr error
}

// NewMD5ReaderProxy creates a new instance of ChecksumReaderProxy.
func NewMD5ReaderProxy(reader io.Reader) *ChecksumReaderProxy {
	return &ChecksumReaderProxy{
		reader:   reader,
		checksum: md5.New(),
	}
}

// Read reads data from the underlying reader and feeds it into the checksum.
func (p *ChecksumReaderProxy) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		if _, checksumErr := p.checksum.Write(buf[:n]); checksumErr != nil {
			p.checksumErr = checksumErr
			return n, checksumErr
		}
	}
	return n, err
}

// GetChecksum returns the MD5 checksum of everything read so far as a hex string.
func (p *ChecksumReaderProxy) GetChecksum() (string, error) {
	if p.checksumErr == nil {
		return hex.EncodeToString(p.checksum.Sum(nil)), nil
	}
	return "", p.checksumErr
}

// ReadAllWithChecksum reads reader to EOF and returns its content with the MD5 checksum.
func ReadAllWithChecksum(reader io.Reader) ([]byte, string, error) {
	proxy := NewMD5ReaderProxy(reader)
	content, err := io.ReadAll(proxy)
	if err != nil {
		return nil, "", err
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		return nil, "", err
	}
	return content, checksum, nil
}
