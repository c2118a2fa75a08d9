package probe

// SystemInfoError reports that a local system fact (IP address, uptime)
// could not be read or parsed.
type SystemInfoError struct {
	Reason string
	Err    error
}

func (e *SystemInfoError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *SystemInfoError) Unwrap() error { return e.Err }

// WeatherAPIError reports any failure on the weather path: missing API key,
// transport failure, an error embedded in the response body, or a response
// that does not match the expected schema.
type WeatherAPIError struct {
	Reason string
	Err    error
}

func (e *WeatherAPIError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *WeatherAPIError) Unwrap() error { return e.Err }
