package format

type (
	Kind            uint8
	CompressionType uint8
)

const (
	KindRequired  Kind = 0x1 // KindRequired classifies a required scalar field.
	KindOptional  Kind = 0x2 // KindOptional classifies an optional scalar field.
	KindArray     Kind = 0x3 // KindArray classifies a fixed-length array field.
	KindComposite Kind = 0x4 // KindComposite classifies a composite view.
	KindMessage   Kind = 0x5 // KindMessage classifies a top-level message view.
	KindGroup     Kind = 0x6 // KindGroup classifies a repeating group view.
	KindData      Kind = 0x7 // KindData classifies a variable-length data view.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "Required"
	case KindOptional:
		return "Optional"
	case KindArray:
		return "Array"
	case KindComposite:
		return "Composite"
	case KindMessage:
		return "Message"
	case KindGroup:
		return "Group"
	case KindData:
		return "Data"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
