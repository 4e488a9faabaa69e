package imaging

// ForFormat resolves a CLI format name to its Encoder. Unknown values
// fall back to ppm; ok reports whether name was recognized, so the
// caller can emit the spec's required stderr warning on fallback.
func ForFormat(name string) (enc Encoder, resolved string, ok bool) {
	switch name {
	case "ppm":
		return PPM{}, "ppm", true
	case "png":
		return PNG{}, "png", true
	case "jpeg", "jpg":
		return JPEG{}, "jpeg", true
	default:
		return PPM{}, "ppm", false
	}
}
