package format

type (
	CodeType        uint8
	CompressionType uint8
)

const (
	TypeUnary         CodeType = 0x1 // TypeUnary represents unary coding.
	TypeGamma         CodeType = 0x2 // TypeGamma represents Elias gamma coding.
	TypeDelta         CodeType = 0x3 // TypeDelta represents Elias delta coding.
	TypeOmega         CodeType = 0x4 // TypeOmega represents Elias omega coding.
	TypeVByte         CodeType = 0x5 // TypeVByte represents variable-byte coding.
	TypeGolombRice    CodeType = 0x6 // TypeGolombRice represents Golomb-Rice coding.
	TypeSimple9       CodeType = 0x7 // TypeSimple9 represents Simple-9 word packing.
	TypeInterpolative CodeType = 0x8 // TypeInterpolative represents binary interpolative coding.
	TypeLLRUN         CodeType = 0x9 // TypeLLRUN represents log-bucketed Huffman coding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// CodeTypes lists every integer code in declaration order.
var CodeTypes = []CodeType{
	TypeUnary, TypeGamma, TypeDelta, TypeOmega, TypeVByte,
	TypeGolombRice, TypeSimple9, TypeInterpolative, TypeLLRUN,
}

func (c CodeType) String() string {
	switch c {
	case TypeUnary:
		return "Unary"
	case TypeGamma:
		return "Gamma"
	case TypeDelta:
		return "Delta"
	case TypeOmega:
		return "Omega"
	case TypeVByte:
		return "VByte"
	case TypeGolombRice:
		return "GolombRice"
	case TypeSimple9:
		return "Simple9"
	case TypeInterpolative:
		return "Interpolative"
	case TypeLLRUN:
		return "LLRUN"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c names a known code.
func (c CodeType) IsValid() bool {
	return c >= TypeUnary && c <= TypeLLRUN
}

// BatchOnly reports whether the code has no single-value form.
func (c CodeType) BatchOnly() bool {
	return c == TypeSimple9 || c == TypeInterpolative
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

// IsValid reports whether c names a known compression.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
