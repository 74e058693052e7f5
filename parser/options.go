package parser

type Options struct {
	// Skip over malformed entries instead of aborting the whole
	// decode. Failures are collected on the document.
	AllowMalformedEntries bool
}

func GetDefaultOptions() Options {
	return Options{
		AllowMalformedEntries: false,
	}
}
