package utils

const (
	OrganizationName                      = "PropManPulse"
	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:*"

	TicketNumberPrefix = "MT"
	TicketSeqWidth     = 3
)
