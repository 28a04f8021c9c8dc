package config

// Template is the commented starter configuration written by WriteDefault.
const Template = `# dock configuration

[dock]
# Size and layout
icon_size = 48                     # icon size in pixels
spacing = 12                       # space between icons in pixels
padding = [0, 12]                  # dock padding: one value, [horizontal, vertical] or [top, right, bottom, left]
negative_vertical_offset = 8       # push the dock down into the bottom edge, in pixels

# Appearance
background_color = "#1a1928"       # hex colour
background_opacity = 1.0           # 0.0 to 1.0
corner_radius = 12                 # corner roundness in pixels
indicator_color = "#f38ba8"        # running indicator, glow and placeholder colour

# Behaviour
auto_hide = true                   # slide the dock away when the pointer leaves
auto_hide_delay_ms = 250           # delay before hiding
auto_show_delay_ms = 250           # delay before showing when the cursor touches the bottom edge
magnification = 1.5                # hover zoom, 1.0 disables it
locked = true                      # ignore clicks and drags on icons
hidden_sliver = 5                  # rows left on screen while hidden, 0 hides completely

# Desktop integration
hide_windows_taskbar = true        # hide the system taskbar while the dock runs
hide_in_fullscreen = true          # hide the dock while a fullscreen window is in front

# Items
#
# Each [[items]] table is one dock entry. Applications need name and path;
# system entries need special instead. icon and args are optional.
#
# Special items: start_menu, settings, recycle_bin, show_desktop, system_tray,
# quick_settings, file_explorer, this_pc, documents, downloads, user_folder,
# network, control_panel, task_view, action_center, run_dialog
#
# A separator:
# [[items]]
# separator = true

[[items]]
name = "Start Menu"
special = "start_menu"

[[items]]
name = "Recycle Bin"
special = "recycle_bin"

[[items]]
name = "This PC"
special = "this_pc"

[[items]]
name = "User Folder"
special = "user_folder"

[[items]]
name = "---"
separator = true

[[items]]
name = "Settings"
special = "settings"

[[items]]
name = "Show Desktop"
special = "show_desktop"

[[items]]
name = "File Explorer"
special = "file_explorer"

[[items]]
name = "Documents"
special = "documents"

[[items]]
name = "Downloads"
special = "downloads"

[[items]]
name = "Task View"
special = "task_view"

[[items]]
name = "Run Dialog"
special = "run_dialog"
`
