package report

// Row is one line of the report: the user's profile plus the derived
// provisioning origin.
type Row struct {
	UserId              string
	FirstName           string
	LastName            string
	Email               string
	Origin              string
	ConfigurationStatus string
}

const (
	originImported  = "Imported (bob)"
	originManual    = "Manual (OKTA)"
	unknownProvider = "UNKNOWN"
)

// reconcile merges the user list with the bob membership set, preserving
// fetch order. Membership is authoritative: a user assigned to the bob app
// reports "Imported (bob)" regardless of what their credentials provider
// claims.
func reconcile(users []*UserRecord, bobIds Set[string]) []Row {
	var rows = make([]Row, 0, len(users))
	for _, u := range users {
		var status = providerStatus(u)
		var origin = originManual
		if bobIds.Has(u.Id) {
			origin = originImported
			status = originImported
		}
		rows = append(rows, Row{
			UserId:              u.Id,
			FirstName:           u.FirstName,
			LastName:            u.LastName,
			Email:               u.Email,
			Origin:              origin,
			ConfigurationStatus: status,
		})
	}
	return rows
}

// providerStatus renders the provisioning origin Okta itself reports via
// the credentials provider descriptor.
func providerStatus(u *UserRecord) string {
	var name = u.ProviderName
	if name == "" {
		name = unknownProvider
	}
	switch u.ProviderType {
	case "OKTA":
		return originManual
	case "FEDERATION", "IMPORT":
		return "Provisioned (" + name + ")"
	default:
		return name
	}
}
