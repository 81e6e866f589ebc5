package dto

import (
	"time"

	"github.com/rence141/Organizational-Management-Sys-sub000/internal/models"
)

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID         uint64                    `json:"id"`
	Name       string                    `json:"name"`
	Domain     string                    `json:"domain"`
	Plan       models.OrganizationPlan   `json:"plan"`
	Status     models.OrganizationStatus `json:"status"`
	OwnerID    uint64                    `json:"owner_id"`
	InviteCode string                    `json:"invite_code,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// OrganizationWithRoleDTO represents an organization with the user's role
type OrganizationWithRoleDTO struct {
	OrganizationDTO
	Role models.MembershipRole `json:"role"`
}

// OrganizationMemberDTO represents a member in an organization
type OrganizationMemberDTO struct {
	User     UserSummaryDTO        `json:"user"`
	Role     models.MembershipRole `json:"role"`
	JoinedAt time.Time             `json:"joined_at"`
}

// OrganizationDetailDTO represents detailed organization information
type OrganizationDetailDTO struct {
	OrganizationDTO
	Members  []OrganizationMemberDTO `json:"members"`
	YourRole models.MembershipRole   `json:"your_role,omitempty"`
}

// ToOrganizationDTO converts an Organization model to OrganizationDTO.
// The invite code is only included for responses aimed at members.
func ToOrganizationDTO(org models.Organization, includeInviteCode bool) OrganizationDTO {
	dto := OrganizationDTO{
		ID:        org.ID,
		Name:      org.Name,
		Domain:    org.Domain,
		Plan:      org.Plan,
		Status:    org.Status,
		OwnerID:   org.OwnerID,
		CreatedAt: org.CreatedAt,
	}
	if includeInviteCode {
		dto.InviteCode = org.InviteCode
	}
	return dto
}

// ToOrganizationWithRoleDTO converts an organization member to DTO with role
func ToOrganizationWithRoleDTO(member models.OrganizationMember) OrganizationWithRoleDTO {
	return OrganizationWithRoleDTO{
		OrganizationDTO: ToOrganizationDTO(member.Organization, false),
		Role:            member.Role,
	}
}

// ToOrganizationMemberDTO converts a member to DTO
func ToOrganizationMemberDTO(member models.OrganizationMember) OrganizationMemberDTO {
	return OrganizationMemberDTO{
		User:     ToUserSummaryDTO(member.User),
		Role:     member.Role,
		JoinedAt: member.JoinedAt,
	}
}

// ToOrganizationDetailDTO converts organization with members to detailed DTO
func ToOrganizationDetailDTO(org models.Organization, members []models.OrganizationMember, yourRole models.MembershipRole) OrganizationDetailDTO {
	memberDTOs := make([]OrganizationMemberDTO, len(members))
	for i, member := range members {
		memberDTOs[i] = ToOrganizationMemberDTO(member)
	}

	return OrganizationDetailDTO{
		OrganizationDTO: ToOrganizationDTO(org, true),
		Members:         memberDTOs,
		YourRole:        yourRole,
	}
}
