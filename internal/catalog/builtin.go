package catalog

// Options grouped the way the editor presents them. Keys use Hyprland's
// "sub:key" notation for options inside nested blocks.

var builtin = []Category{
	{
		Name:        "general",
		Title:       "General",
		Section:     "general",
		Description: "Configure general behavior.",
		Groups: []Group{
			{Title: "Layout", Description: "Choose the default layout.", Options: []Option{
				choice("layout", "Layout", "which layout to use.", "dwindle", "master"),
			}},
			{Title: "Gaps", Description: "Change gaps in & out, workspaces.", Options: []Option{
				integer("gaps_in", "Gaps In", "gaps between windows, also supports css style gaps (top, right, bottom, left -> 5,10,15,20)"),
				integer("gaps_out", "Gaps Out", "gaps between windows and monitor edges, also supports css style gaps (top, right, bottom, left -> 5,10,15,20)"),
				integer("gaps_workspaces", "Gaps Workspaces", "gaps between workspaces. Stacks with gaps_out."),
			}},
			{Title: "Borders", Description: "Size, resize, floating...", Options: []Option{
				integer("border_size", "Border Size", "size of the border around windows"),
				boolean("no_border_on_floating", "No Border on Floating", "disable borders for floating windows"),
				boolean("resize_on_border", "Resize on Border", "enables resizing windows by clicking and dragging on borders and gaps"),
				integer("extend_border_grab_area", "Extend Border Grab Area", "extends the area around the border where you can click and drag on, only used when general:resize_on_border is on."),
				boolean("hover_icon_on_border", "Hover Icon on Border", "show a cursor icon when hovering over borders, only used when general:resize_on_border is on."),
			}},
			{Title: "Colors", Description: "Change borders colors.", Options: []Option{
				rgba("col.inactive_border", "Inactive Border Color", "border color for inactive windows"),
				rgba("col.active_border", "Active Border Color", "border color for the active window"),
				rgba("col.nogroup_border", "No Group Border Color", "inactive border color for window that cannot be added to a group (see denywindowfromgroup dispatcher)"),
				rgba("col.nogroup_border_active", "No Group Active Border Color", "active border color for window that cannot be added to a group"),
			}},
		},
	},
	{
		Name:        "decoration",
		Title:       "Decoration",
		Section:     "decoration",
		Description: "Configure window appearance.",
		Groups: []Group{
			{Title: "Decoration", Options: []Option{
				integer("rounding", "Rounding", "rounded corners' radius (in layout px)"),
				float("active_opacity", "Active Opacity", "opacity of active windows. [0.0 - 1.0]"),
				float("inactive_opacity", "Inactive Opacity", "opacity of inactive windows. [0.0 - 1.0]"),
				float("fullscreen_opacity", "Fullscreen Opacity", "opacity of fullscreen windows. [0.0 - 1.0]"),
				boolean("drop_shadow", "Drop Shadow", "enable drop shadows on windows"),
				integer("shadow_range", "Shadow Range", "Shadow range (\"size\") in layout px"),
				integer("shadow_render_power", "Shadow Render Power", "in what power to render the falloff (more power, the faster the falloff) [1 - 4]"),
				boolean("shadow_ignore_window", "Shadow Ignore Window", "if true, the shadow will not be rendered behind the window itself, only around it."),
				rgba("col.shadow", "Shadow Color", "shadow's color. Alpha dictates shadow's opacity."),
				rgba("col.shadow_inactive", "Inactive Shadow Color", "inactive shadow color. (if not set, will fall back to col.shadow)"),
				text("shadow_offset", "Shadow Offset", "shadow's rendering offset. Format: \"x y\" (e.g. \"0 0\")"),
				float("shadow_scale", "Shadow Scale", "shadow's scale. [0.0 - 1.0]"),
				boolean("dim_inactive", "Dim Inactive", "enables dimming of inactive windows"),
				float("dim_strength", "Dim Strength", "how much inactive windows should be dimmed [0.0 - 1.0]"),
				float("dim_special", "Dim Special", "how much to dim the rest of the screen by when a special workspace is open. [0.0 - 1.0]"),
				float("dim_around", "Dim Around", "how much the dimaround window rule should dim by. [0.0 - 1.0]"),
				text("screen_shader", "Screen Shader", "a path to a custom shader to be applied at the end of rendering. See examples/screenShader.frag for an example."),
			}},
			{Title: "Blur", Description: "Configure blur settings.", Options: []Option{
				boolean("blur:enabled", "Blur Enabled", "enable kawase window background blur"),
				integer("blur:size", "Blur Size", "blur size (distance)"),
				integer("blur:passes", "Blur Passes", "the amount of passes to perform"),
				boolean("blur:ignore_opacity", "Blur Ignore Opacity", "make the blur layer ignore the opacity of the window"),
				boolean("blur:new_optimizations", "Blur New Optimizations", "whether to enable further optimizations to the blur. Recommended to leave on, as it will massively improve performance."),
				boolean("blur:xray", "Blur X-Ray", "if enabled, floating windows will ignore tiled windows in their blur. Only available if blur_new_optimizations is true. Will reduce overhead on floating blur significantly."),
				float("blur:noise", "Blur Noise", "how much noise to apply. [0.0 - 1.0]"),
				float("blur:contrast", "Blur Contrast", "contrast modulation for blur. [0.0 - 2.0]"),
				float("blur:brightness", "Blur Brightness", "brightness modulation for blur. [0.0 - 2.0]"),
				float("blur:vibrancy", "Blur Vibrancy", "Increase saturation of blurred colors. [0.0 - 1.0]"),
				float("blur:vibrancy_darkness", "Blur Vibrancy Darkness", "How strong the effect of vibrancy is on dark areas . [0.0 - 1.0]"),
				boolean("blur:special", "Blur Special", "whether to blur behind the special workspace (note: expensive)"),
				boolean("blur:popups", "Blur Popups", "whether to blur popups (e.g. right-click menus)"),
				float("blur:popups_ignorealpha", "Blur Popups Ignore Alpha", "works like ignorealpha in layer rules. If pixel opacity is below set value, will not blur. [0.0 - 1.0]"),
			}},
		},
	},
	{
		Name:        "animations",
		Title:       "Animations",
		Section:     "animations",
		Description: "Configure animation behavior.",
		Groups: []Group{
			{Title: "Animations", Options: []Option{
				boolean("enabled", "Enable Animations", "Enables animations."),
				boolean("first_launch_animation", "First Launch Animation", "Enables the first launch animation."),
			}},
		},
	},
	{
		Name:        "input",
		Title:       "Input",
		Section:     "input",
		Description: "Configure input devices.",
		Groups: []Group{
			{Title: "Keyboard Settings", Description: "Configure keyboard behavior.", Options: []Option{
				text("kb_model", "Keyboard Model", "Appropriate XKB keymap parameter."),
				text("kb_layout", "Keyboard Layout", "Appropriate XKB keymap parameter"),
				text("kb_variant", "Keyboard Variant", "Appropriate XKB keymap parameter"),
				text("kb_options", "Keyboard Options", "Appropriate XKB keymap parameter"),
				text("kb_rules", "Keyboard Rules", "Appropriate XKB keymap parameter"),
				text("kb_file", "Keyboard File", "If you prefer, you can use a path to your custom .xkb file."),
				boolean("numlock_by_default", "Numlock by Default", "Engage numlock by default."),
				boolean("resolve_binds_by_sym", "Resolve Binds by Symbol", "Determines how keybinds act when multiple layouts are used. If false, keybinds will always act as if the first specified layout is active. If true, keybinds specified by symbols are activated when you type the respective symbol with the current layout."),
				integer("repeat_rate", "Repeat Rate", "The repeat rate for held-down keys, in repeats per second."),
				integer("repeat_delay", "Repeat Delay", "Delay before a held-down key is repeated, in milliseconds."),
			}},
			{Title: "Mouse Settings", Description: "Configure mouse behavior.", Options: []Option{
				float("sensitivity", "Sensitivity", "Sets the mouse input sensitivity. Value is clamped to the range -1.0 to 1.0."),
				text("accel_profile", "Acceleration Profile", "Sets the cursor acceleration profile. Can be one of adaptive, flat. Can also be custom, see below. Leave empty to use libinput's default mode for your input device."),
				boolean("force_no_accel", "Force No Acceleration", "Force no cursor acceleration. This bypasses most of your pointer settings to get as raw of a signal as possible. Enabling this is not recommended due to potential cursor desynchronization."),
				boolean("left_handed", "Left Handed", "Switches RMB and LMB"),
				text("scroll_method", "Scroll Method", "Sets the scroll method. Can be one of 2fg (2 fingers), edge, on_button_down, no_scroll."),
				integer("scroll_button", "Scroll Button", "Sets the scroll button. Has to be an int, cannot be a string. Check wev if you have any doubts regarding the ID. 0 means default."),
				boolean("scroll_button_lock", "Scroll Button Lock", "If the scroll button lock is enabled, the button does not need to be held down. Pressing and releasing the button toggles the button lock, which logically holds the button down or releases it. While the button is logically held down, motion events are converted to scroll events."),
				float("scroll_factor", "Scroll Factor", "Multiplier added to scroll movement for external mice. Note that there is a separate setting for touchpad scroll_factor."),
				boolean("natural_scroll", "Natural Scroll", "Inverts scrolling direction. When enabled, scrolling moves content directly, rather than manipulating a scrollbar."),
				integer("follow_mouse", "Follow Mouse", "Specify if and how cursor movement should affect window focus. 0 - Cursor movement will not change focus, 1 - Cursor movement will always change focus to the window under the cursor, 2 - Cursor focus will be detached from keyboard focus, 3 - Cursor focus will be completely separate from keyboard focus. [0/1/2/3]"),
				boolean("mouse_refocus", "Mouse Refocus", "If disabled, mouse focus won't switch to the hovered window unless the mouse crosses a window boundary when follow_mouse=1."),
				text("scroll_points", "Scroll Points", "Sets the scroll acceleration profile, when accel_profile is set to custom. Has to be in the form <step> <points>. Leave empty to have a flat scroll curve."),
			}},
			{Title: "Focus Settings", Description: "Configure focus behavior.", Options: []Option{
				integer("focus_on_close", "Focus on Close", "Controls the window focus behavior when a window is closed. 0 - focus will shift to the next window candidate, 1 - focus will shift to the window under the cursor. [0/1]"),
				integer("float_switch_override_focus", "Float Switch Override Focus", "If enabled, focus will change to the window under the cursor when changing from tiled-to-floating and vice versa. 0 - disabled, 1 - enabled, 2 - focus will also follow mouse on float-to-float switches. [0/1/2]"),
				boolean("special_fallthrough", "Special Fallthrough", "if enabled, having only floating windows in the special workspace will not block focusing windows in the regular workspace."),
			}},
			{Title: "Touchpad Settings", Description: "Configure touchpad behavior.", Options: []Option{
				boolean("touchpad:disable_while_typing", "Disable While Typing", "Disables the touchpad while typing."),
				boolean("touchpad:natural_scroll", "Natural Scroll", "Enables natural scroll."),
				float("touchpad:scroll_factor", "Scroll Factor", "The scroll factor."),
				boolean("touchpad:middle_button_emulation", "Middle Button Emulation", "Emulates the middle button."),
				text("touchpad:tap_button_map", "Tap Button Map", "The tap button map."),
				boolean("touchpad:clickfinger_behavior", "Clickfinger Behavior", "The clickfinger behavior."),
				boolean("touchpad:tap-to-click", "Tap to Click", "Enables tap to click."),
				boolean("touchpad:drag_lock", "Drag Lock", "Enables drag lock."),
				boolean("touchpad:tap-and-drag", "Tap and Drag", "Enables tap and drag."),
			}},
			{Title: "Touchscreen Settings", Description: "Configure touchscreen behavior.", Options: []Option{
				integer("touchdevice:transform", "Transform", "The transform."),
				text("touchdevice:output", "Output", "The output."),
				boolean("touchdevice:enabled", "Enabled", "Enables the touchdevice."),
			}},
			{Title: "Tablet Settings", Description: "Configure tablet behavior.", Options: []Option{
				integer("tablet:transform", "Transform", "The transform."),
				text("tablet:output", "Output", "The output."),
				text("tablet:region_position", "Region Position", "The region position."),
				text("tablet:region_size", "Region Size", "The region size."),
				boolean("tablet:relative_input", "Relative Input", "Enables relative input."),
				boolean("tablet:left_handed", "Left Handed", "Enables left handed mode."),
				text("tablet:active_area_size", "Active Area Size", "The active area size."),
				text("tablet:active_area_position", "Active Area Position", "The active area position."),
			}},
			{Title: "Miscellaneous Input Settings", Description: "Other input-related settings.", Options: []Option{
				integer("off_window_axis_events", "Off Window Axis Events", "Handles axis events around a focused window. 0 - ignores axis events, 1 - sends out-of-bound coordinates, 2 - fakes pointer coordinates to the closest point inside the window, 3 - warps the cursor to the closest point inside the window [0/1/2/3]"),
				integer("emulate_discrete_scroll", "Emulate Discrete Scroll", "Emulates discrete scrolling from high resolution scrolling events. 0 - disables it, 1 - enables handling of non-standard events only, 2 - force enables all scroll wheel events to be handled [0/1/2]"),
			}},
		},
	},
	{
		Name:        "gestures",
		Title:       "Gestures",
		Section:     "gestures",
		Description: "Configure gesture behavior.",
		Groups: []Group{
			{Title: "Gestures", Options: []Option{
				boolean("workspace_swipe", "Workspace Swipe", "enable workspace swipe gesture on touchpad"),
				integer("workspace_swipe_fingers", "Workspace Swipe Fingers", "how many fingers for the touchpad gesture"),
				boolean("workspace_swipe_min_fingers", "Workspace Swipe Min Fingers", "if enabled, workspace_swipe_fingers is considered the minimum number of fingers to swipe"),
				integer("workspace_swipe_distance", "Workspace Swipe Distance", "in px, the distance of the touchpad gesture"),
				boolean("workspace_swipe_touch", "Workspace Swipe Touch", "enable workspace swiping from the edge of a touchscreen"),
				boolean("workspace_swipe_invert", "Workspace Swipe Invert", "invert the direction (touchpad only)"),
				boolean("workspace_swipe_touch_invert", "Workspace Swipe Touch Invert", "invert the direction (touchscreen only)"),
				integer("workspace_swipe_min_speed_to_force", "Workspace Swipe Min Speed to Force", "minimum speed in px per timepoint to force the change ignoring cancel_ratio. Setting to 0 will disable this mechanic."),
				float("workspace_swipe_cancel_ratio", "Workspace Swipe Cancel Ratio", "how much the swipe has to proceed in order to commence it. (0.7 -> if > 0.7 * distance, switch, if less, revert) [0.0 - 1.0]"),
				boolean("workspace_swipe_create_new", "Workspace Swipe Create New", "whether a swipe right on the last workspace should create a new one."),
				boolean("workspace_swipe_direction_lock", "Workspace Swipe Direction Lock", "if enabled, switching direction will be locked when you swipe past the direction_lock_threshold (touchpad only)."),
				integer("workspace_swipe_direction_lock_threshold", "Workspace Swipe Direction Lock Threshold", "in px, the distance to swipe before direction lock activates (touchpad only)."),
				boolean("workspace_swipe_forever", "Workspace Swipe Forever", "if enabled, swiping will not clamp at the neighboring workspaces but continue to the further ones."),
				boolean("workspace_swipe_use_r", "Workspace Swipe Use R", "if enabled, swiping will use the r prefix instead of the m prefix for finding workspaces."),
			}},
		},
	},
	{
		Name:        "group",
		Title:       "Group",
		Section:     "group",
		Description: "Configure group behavior.",
		Groups: []Group{
			{Title: "Group", Options: []Option{
				boolean("auto_group", "Auto Group", "whether new windows will be automatically grouped into the focused unlocked group"),
				boolean("insert_after_current", "Insert After Current", "whether new windows in a group spawn after current or at group tail"),
				boolean("focus_removed_window", "Focus Removed Window", "whether Hyprland should focus on the window that has just been moved out of the group"),
				integer("drag_into_group", "Drag Into Group", "whether dragging a window into a unlocked group will merge them. 0 - disabled, 1 - enabled, 2 - only when dragging into the groupbar [0/1/2]"),
				boolean("merge_groups_on_drag", "Merge Groups on Drag", "whether window groups can be dragged into other groups"),
				boolean("merge_floated_into_tiled_on_groupbar", "Merge Floated Into Tiled on Groupbar", "whether dragging a floating window into a tiled window groupbar will merge them"),
				rgba("col.border_active", "Active Border Color", "active group border color"),
				rgba("col.border_inactive", "Inactive Border Color", "inactive (out of focus) group border color"),
				rgba("col.border_locked_active", "Locked Active Border Color", "active locked group border color"),
				rgba("col.border_locked_inactive", "Locked Inactive Border Color", "inactive locked group border color"),
			}},
			{Title: "Groupbar Settings", Description: "Configure groupbar behavior.", Options: []Option{
				boolean("groupbar:enabled", "Enabled", "enables groupbars"),
				text("groupbar:font_family", "Font Family", "font used to display groupbar titles, use misc:font_family if not specified"),
				integer("groupbar:font_size", "Font Size", "font size of groupbar title"),
				boolean("groupbar:gradients", "Gradients", "enables gradients"),
				integer("groupbar:height", "Height", "height of the groupbar"),
				boolean("groupbar:stacked", "Stacked", "render the groupbar as a vertical stack"),
				integer("groupbar:priority", "Priority", "sets the decoration priority for groupbars"),
				boolean("groupbar:render_titles", "Render Titles", "whether to render titles in the group bar decoration"),
				boolean("groupbar:scrolling", "Scrolling", "whether scrolling in the groupbar changes group active window"),
				rgba("groupbar:text_color", "Text Color", "controls the group bar text color"),
				rgba("groupbar:col.active", "Active Color", "active group border color"),
				rgba("groupbar:col.inactive", "Inactive Color", "inactive (out of focus) group border color"),
				rgba("groupbar:col.locked_active", "Locked Active Color", "active locked group border color"),
				rgba("groupbar:col.locked_inactive", "Locked Inactive Color", "inactive locked group border color"),
			}},
		},
	},
	{
		Name:        "misc",
		Title:       "Misc",
		Section:     "misc",
		Description: "Configure miscellaneous behavior.",
		Groups: []Group{
			{Title: "Misc", Options: []Option{
				boolean("disable_hyprland_logo", "Disable Hyprland Logo", "disables the random Hyprland logo / anime girl background. :("),
				boolean("disable_splash_rendering", "Disable Splash Rendering", "disables the Hyprland splash rendering. (requires a monitor reload to take effect)"),
				rgba("col.splash", "Splash Color", "Changes the color of the splash text (requires a monitor reload to take effect)."),
				text("font_family", "Font Family", "Set the global default font to render the text including debug fps/notification, config error messages and etc., selected from system fonts."),
				text("splash_font_family", "Splash Font Family", "Changes the font used to render the splash text, selected from system fonts (requires a monitor reload to take effect)."),
				integer("force_default_wallpaper", "Force Default Wallpaper", "Enforce any of the 3 default wallpapers. -1 - random, 0 or 1 - disables the anime background, 2 - enables anime background. [-1/0/1/2]"),
				boolean("vfr", "VFR", "controls the VFR status of Hyprland. Heavily recommended to leave enabled to conserve resources."),
				integer("vrr", "VRR", "Controls the VRR (Adaptive Sync) of your monitors. 0 - off, 1 - on, 2 - fullscreen only [0/1/2]"),
				boolean("mouse_move_enables_dpms", "Mouse Move Enables DPMS", "If DPMS is set to off, wake up the monitors if the mouse moves."),
				boolean("key_press_enables_dpms", "Key Press Enables DPMS", "If DPMS is set to off, wake up the monitors if a key is pressed."),
				boolean("always_follow_on_dnd", "Always Follow on DnD", "Will make mouse focus follow the mouse when drag and dropping. Recommended to leave it enabled, especially for people using focus follows mouse at 0."),
				boolean("layers_hog_keyboard_focus", "Layers Hog Keyboard Focus", "If true, will make keyboard-interactive layers keep their focus on mouse move (e.g. wofi, bemenu)"),
				boolean("animate_manual_resizes", "Animate Manual Resizes", "If true, will animate manual window resizes/moves"),
				boolean("animate_mouse_windowdragging", "Animate Mouse Window Dragging", "If true, will animate windows being dragged by mouse, note that this can cause weird behavior on some curves"),
				boolean("disable_autoreload", "Disable Autoreload", "If true, the config will not reload automatically on save, and instead needs to be reloaded with hyprctl reload. Might save on battery."),
				boolean("enable_swallow", "Enable Swallow", "Enable window swallowing"),
				text("swallow_regex", "Swallow Regex", "The class regex to be used for windows that should be swallowed (usually, a terminal). To know more about the list of regex which can be used use this cheatsheet."),
				text("swallow_exception_regex", "Swallow Exception Regex", "The title regex to be used for windows that should not be swallowed by the windows specified in swallow_regex (e.g. wev). The regex is matched against the parent (e.g. Kitty) window's title on the assumption that it changes to whatever process it's running."),
				boolean("focus_on_activate", "Focus on Activate", "Whether Hyprland should focus an app that requests to be focused (an activate request)"),
				boolean("mouse_move_focuses_monitor", "Mouse Move Focuses Monitor", "Whether mouse moving into a different monitor should focus it"),
				boolean("render_ahead_of_time", "Render Ahead of Time", "[Warning: buggy] starts rendering before your monitor displays a frame in order to lower latency"),
				integer("render_ahead_safezone", "Render Ahead Safezone", "how many ms of safezone to add to rendering ahead of time. Recommended 1-2."),
				boolean("allow_session_lock_restore", "Allow Session Lock Restore", "if true, will allow you to restart a lockscreen app in case it crashes (red screen of death)"),
				rgba("background_color", "Background Color", "change the background color. (requires enabled disable_hyprland_logo)"),
				boolean("close_special_on_empty", "Close Special on Empty", "close the special workspace if the last window is removed"),
				integer("new_window_takes_over_fullscreen", "New Window Takes Over Fullscreen", "If there is a fullscreen or maximized window, decide whether a new tiled window opened should replace it, stay behind or disable the fullscreen/maximized state. 0 - behind, 1 - takes over, 2 - unfullscreen/unmaxize [0/1/2]"),
				boolean("exit_window_retains_fullscreen", "Exit Window Retains Fullscreen", "if true, closing a fullscreen window makes the next focused window fullscreen"),
				integer("initial_workspace_tracking", "Initial Workspace Tracking", "If enabled, windows will open on the workspace they were invoked on. 0 - disabled, 1 - single-shot, 2 - persistent (all children too) [0/1/2]"),
				boolean("middle_click_paste", "Middle Click Paste", "whether to enable middle-click-paste (aka primary selection)"),
				integer("render_unfocused_fps", "Render Unfocused FPS", "the maximum limit for renderunfocused windows' fps in the background (see also Window-Rules - renderunfocused)"),
				boolean("disable_xdg_env_checks", "Disable XDG Environment Checks", "disable the warning if XDG environment is externally managed"),
			}},
		},
	},
	{
		Name:        "binds",
		Title:       "Binds",
		Section:     "binds",
		Description: "Configure keybinding behavior.",
		Groups: []Group{
			{Title: "Binds", Options: []Option{
				boolean("pass_mouse_when_bound", "Pass Mouse When Bound", "If disabled, will not pass the mouse events to apps / dragging windows around if a keybind has been triggered."),
				integer("scroll_event_delay", "Scroll Event Delay", "In ms, how many ms to wait after a scroll event to allow passing another one for the binds."),
				boolean("workspace_back_and_forth", "Workspace Back and Forth", "If enabled, an attempt to switch to the currently focused workspace will instead switch to the previous workspace."),
				boolean("allow_workspace_cycles", "Allow Workspace Cycles", "If enabled, workspaces don't forget their previous workspace, so cycles can be created."),
				integer("workspace_center_on", "Workspace Center On", "Whether switching workspaces should center the cursor on the workspace (0) or on the last active window for that workspace (1). [0/1]"),
				integer("focus_preferred_method", "Focus Preferred Method", "Sets the preferred focus finding method when using focuswindow/movewindow/etc with a direction. 0 - history (recent have priority), 1 - length (longer shared edges have priority) [0/1]"),
				boolean("ignore_group_lock", "Ignore Group Lock", "If enabled, dispatchers like moveintogroup, moveoutofgroup and movewindoworgroup will ignore lock per group."),
				boolean("movefocus_cycles_fullscreen", "Movefocus Cycles Fullscreen", "If enabled, when on a fullscreen window, movefocus will cycle fullscreen, if not, it will move the focus in a direction."),
				boolean("disable_keybind_grabbing", "Disable Keybind Grabbing", "If enabled, apps that request keybinds to be disabled (e.g. VMs) will not be able to do so."),
				boolean("window_direction_monitor_fallback", "Window Direction Monitor Fallback", "If enabled, moving a window or focus over the edge of a monitor with a direction will move it to the next monitor in that direction."),
			}},
		},
	},
	{
		Name:        "xwayland",
		Title:       "XWayland",
		Section:     "xwayland",
		Description: "Configure XWayland behavior.",
		Groups: []Group{
			{Title: "XWayland", Options: []Option{
				boolean("enabled", "Enabled", "Allow running applications using X11."),
				boolean("use_nearest_neighbor", "Use Nearest Neighbor", "Uses the nearest neighbor filtering for xwayland apps, making them pixelated rather than blurry."),
				boolean("force_zero_scaling", "Force Zero Scaling", "Forces a scale of 1 on xwayland windows on scaled displays."),
			}},
		},
	},
	{
		Name:        "opengl",
		Title:       "OpenGL",
		Section:     "opengl",
		Description: "Configure OpenGL behavior.",
		Groups: []Group{
			{Title: "OpenGL", Options: []Option{
				boolean("nvidia_anti_flicker", "Nvidia Anti Flicker", "Reduces flickering on nvidia at the cost of possible frame drops on lower-end GPUs."),
				integer("force_introspection", "Force Introspection", "Forces introspection at all times. Introspection is aimed at reducing GPU usage in certain cases, but might cause graphical glitches on nvidia. 0 - nothing, 1 - force always on, 2 - force always on if nvidia [0/1/2]"),
			}},
		},
	},
	{
		Name:        "render",
		Title:       "Render",
		Section:     "render",
		Description: "Configure render behavior.",
		Groups: []Group{
			{Title: "Render", Options: []Option{
				integer("explicit_sync", "Explicit Sync", "Whether to enable explicit sync support. 0 - no, 1 - yes, 2 - auto based on the gpu driver [0/1/2]"),
				integer("explicit_sync_kms", "Explicit Sync KMS", "Whether to enable explicit sync support for the KMS layer. Requires explicit_sync to be enabled. 0 - no, 1 - yes, 2 - auto based on the gpu driver [0/1/2]"),
				boolean("direct_scanout", "Direct Scanout", "Enables direct scanout. Direct scanout attempts to reduce lag when there is only one fullscreen application on a screen."),
			}},
		},
	},
	{
		Name:        "cursor",
		Title:       "Cursor",
		Section:     "cursor",
		Description: "Configure cursor behavior.",
		Groups: []Group{
			{Title: "Cursor", Options: []Option{
				boolean("sync_gsettings_theme", "Sync GSettings Theme", "Sync xcursor theme with gsettings."),
				boolean("no_hardware_cursors", "No Hardware Cursors", "Disables hardware cursors."),
				boolean("no_break_fs_vrr", "No Break FS VRR", "Disables scheduling new frames on cursor movement for fullscreen apps with VRR enabled to avoid framerate spikes."),
				integer("min_refresh_rate", "Min Refresh Rate", "Minimum refresh rate for cursor movement when no_break_fs_vrr is active."),
				integer("hotspot_padding", "Hotspot Padding", "The padding, in logical px, between screen edges and the cursor."),
				float("inactive_timeout", "Inactive Timeout", "In seconds, after how many seconds of cursor's inactivity to hide it."),
				boolean("no_warps", "No Warps", "If true, will not warp the cursor in many cases."),
				boolean("persistent_warps", "Persistent Warps", "When a window is refocused, the cursor returns to its last position relative to that window."),
				boolean("warp_on_change_workspace", "Warp on Change Workspace", "If true, move the cursor to the last focused window after changing the workspace."),
				text("default_monitor", "Default Monitor", "The name of a default monitor for the cursor to be set to on startup."),
				float("zoom_factor", "Zoom Factor", "The factor to zoom by around the cursor. Like a magnifying glass."),
				boolean("zoom_rigid", "Zoom Rigid", "Whether the zoom should follow the cursor rigidly or loosely."),
				boolean("enable_hyprcursor", "Enable Hyprcursor", "Whether to enable hyprcursor support."),
				boolean("hide_on_key_press", "Hide on Key Press", "Hides the cursor when you press any key until the mouse is moved."),
				boolean("hide_on_touch", "Hide on Touch", "Hides the cursor when the last input was a touch input until a mouse input is done."),
				boolean("allow_dumb_copy", "Allow Dumb Copy", "Makes HW cursors work on Nvidia, at the cost of a possible hitch whenever the image changes."),
			}},
		},
	},
	{
		Name:        "debug",
		Title:       "Debug",
		Section:     "debug",
		Description: "Configure debug behavior.",
		Groups: []Group{
			{Title: "Debug", Options: []Option{
				boolean("overlay", "Overlay", "Print the debug performance overlay."),
				boolean("damage_blink", "Damage Blink", "(epilepsy warning!) Flash areas updated with damage tracking."),
				boolean("disable_logs", "Disable Logs", "Disable logging to a file."),
				boolean("disable_time", "Disable Time", "Disables time logging."),
				integer("damage_tracking", "Damage Tracking", "Redraw only the needed bits of the display. Do not change. 0 - none, 1 - monitor, 2 - full (default) [0/1/2]"),
				boolean("enable_stdout_logs", "Enable Stdout Logs", "Enables logging to stdout."),
				integer("manual_crash", "Manual Crash", "Set to 1 and then back to 0 to crash Hyprland."),
				boolean("suppress_errors", "Suppress Errors", "If true, do not display config file parsing errors."),
				integer("watchdog_timeout", "Watchdog Timeout", "Sets the timeout in seconds for watchdog to abort processing of a signal of the main thread. Set to 0 to disable."),
				boolean("disable_scale_checks", "Disable Scale Checks", "Disables verification of the scale factors. Will result in pixel alignment and rounding errors."),
				integer("error_limit", "Error Limit", "Limits the number of displayed config file parsing errors."),
				integer("error_position", "Error Position", "Sets the position of the error bar. 0 - top, 1 - bottom [0/1]"),
				boolean("colored_stdout_logs", "Colored Stdout Logs", "Enables colors in the stdout logs."),
			}},
		},
	},
	{
		Name:        "layouts",
		Title:       "Layouts",
		Section:     "",
		Description: "Configure layout behavior.",
		Groups: []Group{
			{Title: "Dwindle Layout", Description: "Configure Dwindle layout settings.", Options: []Option{
				boolean("dwindle:pseudotile", "Pseudotile", "Enable pseudotiling. Pseudotiled windows retain their floating size when tiled."),
				integer("dwindle:force_split", "Force Split", "0 -> split follows mouse, 1 -> always split to the left (new = left or top) 2 -> always split to the right (new = right or bottom)"),
				boolean("dwindle:preserve_split", "Preserve Split", "If enabled, the split (side/top) will not change regardless of what happens to the container."),
				boolean("dwindle:smart_split", "Smart Split", "If enabled, allows a more precise control over the window split direction based on the cursor's position."),
				boolean("dwindle:smart_resizing", "Smart Resizing", "If enabled, resizing direction will be determined by the mouse's position on the window."),
				boolean("dwindle:permanent_direction_override", "Permanent Direction Override", "If enabled, makes the preselect direction persist until changed or disabled."),
				float("dwindle:special_scale_factor", "Special Scale Factor", "Specifies the scale factor of windows on the special workspace [0 - 1]"),
				float("dwindle:split_width_multiplier", "Split Width Multiplier", "Specifies the auto-split width multiplier"),
				boolean("dwindle:use_active_for_splits", "Use Active for Splits", "Whether to prefer the active window or the mouse position for splits"),
				float("dwindle:default_split_ratio", "Default Split Ratio", "The default split ratio on window open. 1 means even 50/50 split. [0.1 - 1.9]"),
				integer("dwindle:split_bias", "Split Bias", "Specifies which window will receive the larger half of a split. [0/1/2]"),
			}},
			{Title: "Master Layout", Description: "Configure Master layout settings.", Options: []Option{
				boolean("master:allow_small_split", "Allow Small Split", "Enable adding additional master windows in a horizontal split style"),
				float("master:special_scale_factor", "Special Scale Factor", "The scale of the special workspace windows. [0.0 - 1.0]"),
				float("master:mfact", "Master Factor", "The size as a percentage of the master window. [0.0 - 1.0]"),
				choice("master:new_status", "New Window Status", "Determines how new windows are added to the layout.", "master", "slave", "inherit"),
				boolean("master:new_on_top", "New on Top", "Whether a newly open window should be on the top of the stack"),
				choice("master:new_on_active", "New on Active", "Place new window relative to the focused window", "before", "after", "none"),
				choice("master:orientation", "Orientation", "Default placement of the master area", "left", "right", "top", "bottom", "center"),
				boolean("master:inherit_fullscreen", "Inherit Fullscreen", "Inherit fullscreen status when cycling/swapping to another window"),
				boolean("master:always_center_master", "Always Center Master", "Keep the master window centered when using center orientation"),
				boolean("master:smart_resizing", "Smart Resizing", "If enabled, resizing direction will be determined by the mouse's position on the window"),
				boolean("master:drop_at_cursor", "Drop at Cursor", "When enabled, dragging and dropping windows will put them at the cursor position"),
			}},
			{Title: "{} Settings", Description: "Configure {} behavior.", Options: []Option{
			}},
		},
	},
}
