package cancel

import (
	"fmt"
	"strings"
)

// Method is a way to cancel a subscription.
type Method string

const (
	MethodEmail      Method = "Email"
	MethodPhone      Method = "Phone"
	MethodOnlineForm Method = "Online Form"
)

// ServiceInfo holds known cancellation contacts for a service.
type ServiceInfo struct {
	Methods []Method
	URL     string
	Phone   string
}

// knownServices maps service-name substrings to cancellation contacts.
// Matched in declaration order against the lowercased description.
var knownServices = []struct {
	name string
	info ServiceInfo
}{
	{"netflix", ServiceInfo{
		Methods: []Method{MethodOnlineForm, MethodPhone},
		URL:     "https://www.netflix.com/cancelplan",
		Phone:   "1-866-579-7172",
	}},
	{"spotify", ServiceInfo{
		Methods: []Method{MethodOnlineForm},
		URL:     "https://www.spotify.com/account/subscription/cancel/",
	}},
	{"hulu", ServiceInfo{
		Methods: []Method{MethodOnlineForm},
		URL:     "https://secure.hulu.com/account/cancel",
	}},
	{"amazon prime", ServiceInfo{
		Methods: []Method{MethodOnlineForm},
		URL:     "https://www.amazon.com/gp/primecentral",
	}},
}

// defaultMethods applies when a service has no directory entry.
var defaultMethods = []Method{MethodEmail, MethodPhone, MethodOnlineForm}

// Lookup returns the directory entry matching a subscription description.
func Lookup(description string) (ServiceInfo, bool) {
	desc := strings.ToLower(description)
	for _, svc := range knownServices {
		if strings.Contains(desc, svc.name) {
			return svc.info, true
		}
	}
	return ServiceInfo{}, false
}

// Methods returns the available cancellation methods for a subscription.
func Methods(description string) []Method {
	if info, ok := Lookup(description); ok {
		return info.Methods
	}
	return defaultMethods
}

// URL returns the cancellation URL for a subscription, falling back to a
// web search when the service is unknown.
func URL(description string) string {
	if info, ok := Lookup(description); ok && info.URL != "" {
		return info.URL
	}
	query := strings.ReplaceAll(description, " ", "+")
	return fmt.Sprintf("https://www.google.com/search?q=how+to+cancel+%s+subscription", query)
}

// PhoneNumber returns the customer service number for a subscription, or a
// hint when none is known.
func PhoneNumber(description string) string {
	if info, ok := Lookup(description); ok && info.Phone != "" {
		return info.Phone
	}
	return "Check the company's website for customer service contact information"
}
