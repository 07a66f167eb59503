package constants

// Locals keys yang dipakai lintas middleware/controller.
const (
	LocalsLibrarian = "librarian"
	LocalsRequestID = "reqid"
)

// Role tunggal untuk token pustakawan.
const RoleLibrarian = "librarian"
