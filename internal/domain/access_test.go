package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	owner := Actor{ID: 1, Role: RoleUser}
	stranger := Actor{ID: 2, Role: RoleUser}
	admin := Actor{ID: 3, Role: RoleAdmin}
	unknownRole := Actor{ID: 1, Role: Role("superuser")}

	cases := []struct {
		name    string
		actor   Actor
		ownerID int64
		want    bool
	}{
		{name: "owner reads own record", actor: owner, ownerID: 1, want: true},
		{name: "stranger denied", actor: stranger, ownerID: 1, want: false},
		{name: "admin reads any record", actor: admin, ownerID: 1, want: true},
		{name: "admin reads own record", actor: admin, ownerID: 3, want: true},
		{name: "unknown role denied even for matching id", actor: unknownRole, ownerID: 1, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, action := range []Action{ActionRead, ActionEdit, ActionDelete} {
				assert.Equal(t, c.want, CanAccess(c.actor, c.ownerID, action))
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw    string
		want   Role
		wantOk bool
	}{
		{raw: "user", want: RoleUser, wantOk: true},
		{raw: "admin", want: RoleAdmin, wantOk: true},
		{raw: "Admin", wantOk: false},
		{raw: "", wantOk: false},
	}
	for _, c := range cases {
		role, ok := ParseRole(c.raw)
		assert.Equal(t, c.wantOk, ok, c.raw)
		if ok {
			assert.Equal(t, c.want, role)
		}
	}
}
