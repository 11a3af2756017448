package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"notes:generate",
		"flashcards:generate",
		"quiz:generate",
		"quiz:submit",
		"results:view-own",
		"analytics:view-own",
		"report:export-own",
	},
	"teacher": {
		"notes:generate",
		"flashcards:generate",
		"quiz:generate",
		"quiz:submit",
		"results:view-own",
		"results:view-all",
		"analytics:view-own",
		"analytics:view-all",
		"report:export-own",
		"report:export-all",
	},
}
