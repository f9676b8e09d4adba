package htmlrender

// documentStyles is the base stylesheet shared by every rendered page.
const documentStyles = `
:root {
    --primary: #CC785C;
    --dark: #191919;
    --background: #FAF9F7;
    --accent: #E8DDD4;
    --light-text: #666666;
    --green: #4ADE80;
}

@media (prefers-color-scheme: dark) {
    :root {
        --background: #1a1a1a;
        --dark: #ffffff;
        --accent: #333333;
        --light-text: #999999;
    }
}

* {
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'SF Pro Display', sans-serif;
    background: var(--background);
    color: var(--dark);
    padding: 24px;
    line-height: 1.6;
    max-width: 100%;
    margin: 0;
}

h1, h2, h3 {
    color: var(--primary);
    margin-top: 1.5em;
    margin-bottom: 0.5em;
}

h1 { font-size: 1.8em; border-bottom: 2px solid var(--primary); padding-bottom: 8px; }
h2 { font-size: 1.4em; }
h3 { font-size: 1.2em; }

table {
    width: 100%;
    border-collapse: collapse;
    margin: 16px 0;
}

th, td {
    border: 1px solid var(--accent);
    padding: 12px;
    text-align: left;
}

th {
    background: var(--accent);
    font-weight: 600;
}

tr:nth-child(even) {
    background: rgba(0,0,0,0.02);
}

pre {
    background: #2d2d2d;
    color: #ccc;
    padding: 16px;
    border-radius: 8px;
    overflow-x: auto;
}

code {
    font-family: 'SF Mono', Monaco, monospace;
    font-size: 0.9em;
}

.checklist {
    list-style: none;
    padding-left: 0;
}

.checklist li {
    padding: 8px 0;
    display: flex;
    align-items: center;
    gap: 8px;
}

.checklist li.completed {
    color: var(--light-text);
    text-decoration: line-through;
}

.checklist input[type="checkbox"] {
    width: 18px;
    height: 18px;
    accent-color: var(--green);
}

hr {
    border: none;
    border-top: 1px solid var(--accent);
    margin: 24px 0;
}

a {
    color: var(--primary);
}

blockquote {
    border-left: 4px solid var(--primary);
    padding-left: 16px;
    margin-left: 0;
    color: var(--light-text);
    font-style: italic;
}
`

// emailStyles decorates the compose mockup.
const emailStyles = `
.email-container {
    max-width: 700px;
    margin: 0 auto;
    background: var(--background);
    border-radius: 12px;
    overflow: hidden;
    box-shadow: 0 4px 20px rgba(0,0,0,0.1);
}

.email-header-bar {
    display: flex;
    justify-content: space-between;
    align-items: center;
    padding: 12px 16px;
    background: var(--accent);
    border-bottom: 1px solid rgba(0,0,0,0.1);
}

.email-action-buttons {
    display: flex;
    gap: 8px;
}

.email-btn {
    background: transparent;
    border: none;
    padding: 8px;
    border-radius: 6px;
    cursor: pointer;
    color: var(--dark);
    opacity: 0.7;
    transition: all 0.2s;
}

.email-btn:hover {
    background: rgba(0,0,0,0.1);
    opacity: 1;
}

.email-btn:first-child {
    background: var(--primary);
    color: white;
    opacity: 1;
}

.email-btn:first-child:hover {
    filter: brightness(1.1);
}

.email-status {
    font-size: 12px;
    color: var(--light-text);
    background: rgba(0,0,0,0.05);
    padding: 4px 10px;
    border-radius: 4px;
}

.email-compose {
    padding: 20px;
}

.email-row {
    display: flex;
    gap: 16px;
    margin-bottom: 20px;
}

.avatar {
    width: 44px;
    height: 44px;
    border-radius: 50%;
    background: linear-gradient(135deg, var(--primary), #e6a089);
    color: white;
    display: flex;
    align-items: center;
    justify-content: center;
    font-weight: 600;
    font-size: 14px;
    flex-shrink: 0;
}

.email-fields {
    flex: 1;
}

.field-row {
    display: flex;
    align-items: center;
    padding: 8px 0;
    border-bottom: 1px solid var(--accent);
}

.field-row label {
    width: 60px;
    color: var(--light-text);
    font-size: 13px;
}

.field-value {
    flex: 1;
    font-size: 14px;
}

.field-value.recipient {
    color: var(--primary);
    font-weight: 500;
}

.field-value.subject {
    font-weight: 600;
}

.email-body-container {
    min-height: 200px;
    padding: 16px;
    background: white;
    border-radius: 8px;
    margin: 16px 0;
}

@media (prefers-color-scheme: dark) {
    .email-body-container {
        background: #2a2a2a;
    }
}

.email-body {
    font-size: 14px;
    line-height: 1.7;
}

.email-body p {
    margin: 0 0 12px 0;
}

.email-signature {
    padding-top: 16px;
    color: var(--light-text);
    font-size: 12px;
}

.sig-line {
    height: 1px;
    background: var(--accent);
    margin-bottom: 12px;
}

.email-footer {
    padding: 16px;
    background: var(--accent);
    border-top: 1px solid rgba(0,0,0,0.05);
}

.shortcut-hint {
    display: flex;
    gap: 20px;
    justify-content: center;
    font-size: 12px;
    color: var(--light-text);
}

kbd {
    background: white;
    padding: 3px 8px;
    border-radius: 4px;
    font-family: monospace;
    font-weight: 600;
    margin-right: 6px;
    box-shadow: 0 1px 2px rgba(0,0,0,0.1);
}

@media (prefers-color-scheme: dark) {
    kbd {
        background: #444;
    }
}
`

// staticCalendarStyles decorates the markdown-driven schedule grid.
const staticCalendarStyles = `
.calendar-container {
    background: var(--background);
    border-radius: 12px;
    overflow: hidden;
    box-shadow: 0 4px 20px rgba(0,0,0,0.1);
    margin: 10px;
}

.calendar-header {
    display: flex;
    justify-content: space-between;
    align-items: center;
    padding: 16px 20px;
    background: var(--accent);
    border-bottom: 1px solid rgba(0,0,0,0.1);
}

.calendar-nav {
    display: flex;
    align-items: center;
    gap: 16px;
}

.nav-btn {
    background: transparent;
    border: 1px solid var(--light-text);
    color: var(--dark);
    width: 32px;
    height: 32px;
    border-radius: 50%;
    cursor: pointer;
    font-size: 14px;
    transition: all 0.2s;
}

.nav-btn:hover {
    background: var(--primary);
    border-color: var(--primary);
    color: white;
}

.calendar-title h1 {
    margin: 0;
    font-size: 20px;
    border: none;
    padding: 0;
}

.date-subtitle {
    font-size: 13px;
    color: var(--light-text);
}

.view-toggle {
    display: flex;
    gap: 4px;
    background: rgba(0,0,0,0.05);
    padding: 4px;
    border-radius: 8px;
}

.view-btn {
    background: transparent;
    border: none;
    padding: 6px 14px;
    border-radius: 6px;
    font-size: 13px;
    cursor: pointer;
    color: var(--dark);
    transition: all 0.2s;
}

.view-btn.active {
    background: white;
    box-shadow: 0 1px 3px rgba(0,0,0,0.1);
}

@media (prefers-color-scheme: dark) {
    .view-btn.active {
        background: #444;
    }
}

.calendar-body {
    display: flex;
    height: 960px;
    overflow-y: auto;
}

.time-gutter {
    width: 70px;
    flex-shrink: 0;
    border-right: 1px solid var(--accent);
    padding-top: 10px;
}

.time-label {
    height: 60px;
    padding: 0 12px;
    font-size: 11px;
    color: var(--light-text);
    text-align: right;
}

.events-track {
    flex: 1;
    position: relative;
}

.hour-lines {
    position: absolute;
    inset: 0;
    padding-top: 10px;
}

.hour-line {
    height: 60px;
    border-bottom: 1px solid var(--accent);
}

.events-layer {
    position: absolute;
    inset: 0;
    padding: 10px 8px;
}

.calendar-event {
    position: absolute;
    left: 4px;
    right: 4px;
    border-radius: 6px;
    padding: 6px 10px;
    color: white;
    cursor: pointer;
    transition: transform 0.2s, box-shadow 0.2s;
    overflow: hidden;
}

.calendar-event:hover {
    transform: scale(1.02);
    box-shadow: 0 4px 12px rgba(0,0,0,0.2);
}

.event-content {
    display: flex;
    flex-direction: column;
    gap: 2px;
}

.event-time {
    font-size: 11px;
    opacity: 0.9;
}

.event-title {
    font-size: 13px;
    font-weight: 500;
    line-height: 1.3;
}

.calendar-footer {
    padding: 12px;
    background: var(--accent);
    border-top: 1px solid rgba(0,0,0,0.05);
    text-align: center;
}

.shortcut-hint {
    font-size: 12px;
    color: var(--light-text);
}
`
