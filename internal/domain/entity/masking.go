package entity

// CardMaskPrefix replaces every digit but the last four
const CardMaskPrefix = "**** **** **** "

// MaskCardNumber keeps the last four characters and hides the rest.
// Values shorter than four characters are returned unchanged.
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return number
	}
	return CardMaskPrefix + number[len(number)-4:]
}
