package authz

// Action is something a principal wants to do to a project or one of its
// resources. Authorization is decided per action, not per endpoint, so every
// route asking the same question gets the same answer.
type Action string

const (
	ActionViewProject   Action = "view_project"
	ActionEditProject   Action = "edit_project"
	ActionDeleteProject Action = "delete_project"

	ActionViewTasks  Action = "view_tasks"
	ActionCreateTask Action = "create_task"
	ActionEditTask   Action = "edit_task"
	ActionDeleteTask Action = "delete_task"

	ActionViewFiles  Action = "view_files"
	ActionUploadFile Action = "upload_file"
	ActionDeleteFile Action = "delete_file"

	ActionViewMembers    Action = "view_members"
	ActionAddMember      Action = "add_member"
	ActionRemoveMember   Action = "remove_member"
	ActionEditMemberRole Action = "edit_member_role"
)

// minimumRole is the role required for each action. Two actions are not fully
// described by this table: delete_project additionally requires the principal
// to be the project's creator, and delete_file has two extra grants (creator,
// uploader) handled by AuthorizeFileDelete. Deleting a task deliberately needs
// nothing beyond membership: any member may delete any task.
var minimumRole = map[Action]Role{
	ActionViewProject:   RoleMember,
	ActionEditProject:   RoleAdmin,
	ActionDeleteProject: RoleOwner,

	ActionViewTasks:  RoleMember,
	ActionCreateTask: RoleMember,
	ActionEditTask:   RoleMember,
	ActionDeleteTask: RoleMember,

	ActionViewFiles:  RoleMember,
	ActionUploadFile: RoleMember,
	ActionDeleteFile: RoleAdmin,

	ActionViewMembers:    RoleMember,
	ActionAddMember:      RoleAdmin,
	ActionRemoveMember:   RoleAdmin,
	ActionEditMemberRole: RoleAdmin,
}
