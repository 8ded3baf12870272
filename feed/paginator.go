package feed

import "strconv"

// NumPages always reports at least one page, so an empty feed renders as an empty first page
func NumPages(count int64, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 1
	}
	return int((count + int64(perPage) - 1) / int64(perPage))
}

// ResolvePage turns the raw ?page= value into a valid page number.
// Missing or non-numeric values select the first page, anything out of range selects the last one.
func ResolvePage(raw string, numPages int) int {
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	if number < 1 || number > numPages {
		return numPages
	}
	return number
}
