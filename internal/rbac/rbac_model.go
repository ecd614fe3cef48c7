package rbac

// Static RBAC model: requests carry the caller's role straight from the
// JWT, roles inherit downward (OWNER > MANAGER > STAFF).
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

const (
	RoleOwner   = "OWNER"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

// policyRules is the fixed permission table. STAFF is read-only, MANAGER
// additionally maintains the ledgers and employee records, OWNER can also
// remove employees.
var policyRules = [][3]string{
	{RoleStaff, "employee", "read"},
	{RoleStaff, "absence", "read"},
	{RoleStaff, "payment", "read"},
	{RoleStaff, "estimation", "read"},

	{RoleManager, "employee", "create"},
	{RoleManager, "employee", "update"},
	{RoleManager, "absence", "create"},
	{RoleManager, "absence", "update"},
	{RoleManager, "absence", "delete"},
	{RoleManager, "payment", "create"},
	{RoleManager, "payment", "update"},
	{RoleManager, "payment", "delete"},

	{RoleOwner, "employee", "delete"},
}

var roleHierarchy = [][2]string{
	{RoleOwner, RoleManager},
	{RoleManager, RoleStaff},
}
