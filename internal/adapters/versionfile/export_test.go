// export_test.go exports private functions for white-box testing.
package versionfile

// ExportCodec exports the private codec functions for testing.
var (
	EncodeRecord = encodeRecord
	DecodeRecord = decodeRecord
)
