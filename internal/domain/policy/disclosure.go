package policy

import "matrimony/internal/domain/entity"

// CanViewContact reports whether the viewer may see a listing's contact
// fields through direct profile viewing: admins, approved premium members,
// and the listing's owner qualify. Payment-based unlocks are a separate
// channel and do not flow through here.
func CanViewContact(v Viewer, b *entity.Biodata) bool {
	if v.Role == entity.RoleAdmin {
		return true
	}
	if v.Premium == entity.PremiumApproved {
		return true
	}

	return v.Email != "" && v.Email == b.ContactEmail
}

// RenderBiodata returns the listing as the viewer is entitled to see it.
// Denied viewers get the contact fields blanked in place of omitted, so the
// serialized keys stay present for existing clients.
func RenderBiodata(v Viewer, b *entity.Biodata) *entity.Biodata {
	view := *b
	if !CanViewContact(v, b) {
		view.RedactContact()
	}

	return &view
}
