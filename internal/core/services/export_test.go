package services

// MaxUsernameLength exposes maxUsernameLength to the external services_test package.
const MaxUsernameLength = maxUsernameLength
