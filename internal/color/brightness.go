package color

// LightThreshold is the raw channel sum above which a color counts as light
// (an average channel above 128).
const LightThreshold = 384

// EstimatedBrightness sums the raw 0-255 channels of hex. This is an
// additive proxy with no gamma or luminance weighting; saturated blues and
// greens are misclassified relative to perceived brightness.
func EstimatedBrightness(hex string) (int, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return rgb.Sum(), nil
}

// IsLight reports whether hex is classified light for foreground contrast
func IsLight(hex string) (bool, error) {
	sum, err := EstimatedBrightness(hex)
	if err != nil {
		return false, err
	}
	return sum > LightThreshold, nil
}

// ContrastText returns black for light backgrounds and white otherwise.
// Invalid input is treated as dark.
func ContrastText(hex string) string {
	if light, _ := IsLight(hex); light {
		return "#000000"
	}
	return "#ffffff"
}
