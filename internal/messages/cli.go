package messages

// CLI messages for the root command.
const (
	// RootUse is the usage line for the root command.
	RootUse = "awl [ansible arguments...]"
	// RootShort is the short description for the root command.
	RootShort = "Launch the pinned Ansible version, provisioning it on first use"
)
