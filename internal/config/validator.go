package config

// Warnings returns non-fatal configuration problems worth logging at startup.
func (c *Config) Warnings() []string {
	var warnings []string

	switch c.AdminAPIKey {
	case "":
		warnings = append(warnings, WarnMsgNoAdminKey)
	case ExampleAdminAPIKey:
		warnings = append(warnings, WarnMsgExampleAdminKey)
	}

	if c.IsProduction() && c.RNGSeed != 0 {
		warnings = append(warnings, WarnMsgFixedSeedProd)
	}

	return warnings
}
