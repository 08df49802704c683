package testutil

// MaxFuzzBytes bounds fuzz inputs handed to applets.
const MaxFuzzBytes = 2048

func ClampString(data string, max int) string {
	if len(data) > max {
		return data[:max]
	}
	return data
}
