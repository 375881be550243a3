package validation

import (
	"surveyhub/internal/models"
)

// UserRegistration validates a signup payload. Field order matters: the
// first failing field's message is what the handler returns.
func (v *Validator) UserRegistration(input *models.CreateUserInput) {
	v.Required("name", input.Name, "Name is required")
	v.MaxLength("name", input.Name, 255, "Name is too long")
	v.Email("email", input.Email)
	v.MinLength("password", input.Password, 6, "Password must be at least 6 characters")
	if _, err := models.ParseRole(input.Role); err != nil {
		v.AddError("role", "Role must be admin, manager, or surveyor")
	}
}

// Login validates a login payload.
func (v *Validator) Login(email, password string) {
	v.Email("email", email)
	v.Required("password", password, "Password is required")
}

// KYCSubmission validates a KYC submission payload.
func (v *Validator) KYCSubmission(input *models.SubmitKYCInput) {
	v.UUID("userId", input.UserID, "Invalid user ID")
	v.Required("aadharName", input.AadharName, "Aadhar name is required")
	v.MaxLength("aadharName", input.AadharName, 255, "Aadhar name is too long")
	if len(input.AadharNumber) != 12 {
		v.AddError("aadharNumber", "Aadhar number must be 12 digits")
	} else {
		v.DigitsOnly("aadharNumber", input.AadharNumber, "Aadhar number must contain only digits")
	}
	v.MinLength("phoneNumber", input.PhoneNumber, 10, "Phone number must be at least 10 digits")
	v.MaxLength("phoneNumber", input.PhoneNumber, 15, "Phone number is too long")
	v.DigitsOnly("phoneNumber", input.PhoneNumber, "Phone number must contain only digits")
	v.Required("address", input.Address, "Address is required")
	v.MaxLength("address", input.Address, 500, "Address is too long")
}
