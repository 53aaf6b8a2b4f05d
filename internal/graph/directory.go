package graph

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"entragraph/internal/directory/models"
)

// Directory exposes page-level Microsoft Graph resource fetches plus writes.
// Each method resolves the memoized client first, so no credential work or
// network activity happens before the first actual call. Cursor parameters
// are @odata.nextLink URLs; an empty cursor means the initial page.
type Directory struct {
	provider *Provider
}

func NewDirectory(provider *Provider) *Directory {
	return &Directory{provider: provider}
}

// eventualConsistency is required by Graph for $search and advanced $filter
// queries on directory objects.
var eventualConsistency = map[string]string{"ConsistencyLevel": "eventual"}

func (d *Directory) SearchUsersPage(ctx context.Context, query string, top int, cursor string) (Page[models.User], error) {
	var page Page[models.User]
	c, err := d.provider.Client()
	if err != nil {
		return page, err
	}
	if cursor != "" {
		err = c.getURL(ctx, "users.search", cursor, &page)
		return page, err
	}

	clause := fmt.Sprintf(
		`"displayName:%[1]s" OR "mail:%[1]s" OR "userPrincipalName:%[1]s" OR "givenName:%[1]s" OR "surname:%[1]s" OR "otherMails:%[1]s"`,
		query,
	)
	q := url.Values{}
	q.Set("$search", clause)
	q.Set("$top", strconv.Itoa(top))
	err = c.get(ctx, "users.search", "/users", q, eventualConsistency, &page)
	return page, err
}

func (d *Directory) User(ctx context.Context, userID string) (*models.User, error) {
	c, err := d.provider.Client()
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := c.get(ctx, "users.get", "/users/"+url.PathEscape(userID), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Directory) CreateUser(ctx context.Context, user *models.UserWrite) (*models.User, error) {
	c, err := d.provider.Client()
	if err != nil {
		return nil, err
	}
	var created models.User
	if err := c.post(ctx, "users.create", "/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *Directory) UpdateUser(ctx context.Context, userID string, patch *models.UserWrite) error {
	c, err := d.provider.Client()
	if err != nil {
		return err
	}
	return c.patch(ctx, "users.update", "/users/"+url.PathEscape(userID), patch)
}

func (d *Directory) DeleteUser(ctx context.Context, userID string) error {
	c, err := d.provider.Client()
	if err != nil {
		return err
	}
	return c.delete(ctx, "users.delete", "/users/"+url.PathEscape(userID))
}

// SetManagerRef points the user's manager reference at another directory
// object. Graph models this as a $ref PUT, not a property patch.
func (d *Directory) SetManagerRef(ctx context.Context, userID, managerID string) error {
	c, err := d.provider.Client()
	if err != nil {
		return err
	}
	ref := map[string]string{
		"@odata.id": c.baseURL + "/directoryObjects/" + url.PathEscape(managerID),
	}
	return c.put(ctx, "users.setManager", "/users/"+url.PathEscape(userID)+"/manager/$ref", ref)
}

func (d *Directory) RemoveManagerRef(ctx context.Context, userID string) error {
	c, err := d.provider.Client()
	if err != nil {
		return err
	}
	return c.delete(ctx, "users.removeManager", "/users/"+url.PathEscape(userID)+"/manager/$ref")
}

func (d *Directory) TransitiveMemberOfPage(ctx context.Context, userID, cursor string) (Page[models.DirectoryObject], error) {
	return d.objectsPage(ctx, "users.transitiveMemberOf", "/users/"+url.PathEscape(userID)+"/transitiveMemberOf", nil, cursor)
}

func (d *Directory) MemberOfPage(ctx context.Context, userID, cursor string) (Page[models.DirectoryObject], error) {
	return d.objectsPage(ctx, "users.memberOf", "/users/"+url.PathEscape(userID)+"/memberOf", nil, cursor)
}

func (d *Directory) DirectoryRolesPage(ctx context.Context, cursor string) (Page[models.DirectoryRole], error) {
	var page Page[models.DirectoryRole]
	c, err := d.provider.Client()
	if err != nil {
		return page, err
	}
	if cursor != "" {
		err = c.getURL(ctx, "directoryRoles.list", cursor, &page)
		return page, err
	}
	err = c.get(ctx, "directoryRoles.list", "/directoryRoles", nil, nil, &page)
	return page, err
}

func (d *Directory) DirectoryRole(ctx context.Context, roleID string) (*models.DirectoryRole, error) {
	c, err := d.provider.Client()
	if err != nil {
		return nil, err
	}
	var role models.DirectoryRole
	if err := c.get(ctx, "directoryRoles.get", "/directoryRoles/"+url.PathEscape(roleID), nil, nil, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (d *Directory) RoleMembersPage(ctx context.Context, roleID, cursor string) (Page[models.DirectoryObject], error) {
	return d.objectsPage(ctx, "directoryRoles.members", "/directoryRoles/"+url.PathEscape(roleID)+"/members", nil, cursor)
}

func (d *Directory) GroupsPage(ctx context.Context, top int, cursor string) (Page[models.Group], error) {
	q := url.Values{}
	q.Set("$top", strconv.Itoa(top))
	return d.groupsPage(ctx, "groups.list", q, nil, cursor)
}

func (d *Directory) SearchGroupsPage(ctx context.Context, name string, top int, cursor string) (Page[models.Group], error) {
	q := url.Values{}
	q.Set("$search", fmt.Sprintf(`"displayName:%s"`, name))
	q.Set("$top", strconv.Itoa(top))
	return d.groupsPage(ctx, "groups.search", q, eventualConsistency, cursor)
}

func (d *Directory) Group(ctx context.Context, groupID string) (*models.Group, error) {
	c, err := d.provider.Client()
	if err != nil {
		return nil, err
	}
	var group models.Group
	if err := c.get(ctx, "groups.get", "/groups/"+url.PathEscape(groupID), nil, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (d *Directory) GroupMembersPage(ctx context.Context, groupID string, top int, cursor string) (Page[models.DirectoryObject], error) {
	q := url.Values{}
	if top > 0 {
		q.Set("$top", strconv.Itoa(top))
	}
	return d.objectsPage(ctx, "groups.members", "/groups/"+url.PathEscape(groupID)+"/members", q, cursor)
}

func (d *Directory) AuthenticationMethodsPage(ctx context.Context, userID, cursor string) (Page[models.AuthenticationMethod], error) {
	var page Page[models.AuthenticationMethod]
	c, err := d.provider.Client()
	if err != nil {
		return page, err
	}
	if cursor != "" {
		err = c.getURL(ctx, "users.authenticationMethods", cursor, &page)
		return page, err
	}
	err = c.get(ctx, "users.authenticationMethods", "/users/"+url.PathEscape(userID)+"/authentication/methods", nil, nil, &page)
	return page, err
}

func (d *Directory) SignInsPage(ctx context.Context, filter string, top int, cursor string) (Page[models.SignInEvent], error) {
	var page Page[models.SignInEvent]
	c, err := d.provider.Client()
	if err != nil {
		return page, err
	}
	if cursor != "" {
		err = c.getURL(ctx, "auditLogs.signIns", cursor, &page)
		return page, err
	}
	q := url.Values{}
	q.Set("$filter", filter)
	q.Set("$top", strconv.Itoa(top))
	err = c.get(ctx, "auditLogs.signIns", "/auditLogs/signIns", q, nil, &page)
	return page, err
}

func (d *Directory) objectsPage(ctx context.Context, operation, path string, q url.Values, cursor string) (Page[models.DirectoryObject], error) {
	var page Page[models.DirectoryObject]
	c, err := d.provider.Client()
	if err != nil {
		return page, err
	}
	if cursor != "" {
		err = c.getURL(ctx, operation, cursor, &page)
		return page, err
	}
	err = c.get(ctx, operation, path, q, nil, &page)
	return page, err
}

func (d *Directory) groupsPage(ctx context.Context, operation string, q url.Values, headers map[string]string, cursor string) (Page[models.Group], error) {
	var page Page[models.Group]
	c, err := d.provider.Client()
	if err != nil {
		return page, err
	}
	if cursor != "" {
		err = c.getURL(ctx, operation, cursor, &page)
		return page, err
	}
	err = c.get(ctx, operation, "/groups", q, headers, &page)
	return page, err
}
