package calendar

const baseStyles = `
:root {
    --primary: #4285F4;
    --dark: #191919;
    --background: #FAF9F7;
    --accent: #E8E8E8;
    --light-text: #666666;
    --border: #dadce0;
}

@media (prefers-color-scheme: dark) {
    :root {
        --background: #1a1a1a;
        --dark: #ffffff;
        --accent: #333333;
        --light-text: #999999;
        --border: #444;
    }
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
    font-family: -apple-system, BlinkMacSystemFont, 'SF Pro Display', sans-serif;
    background: var(--background);
    color: var(--dark);
    height: 100vh;
    overflow: hidden;
}
`

const calendarStyles = `
.calendar-app {
    display: flex;
    flex-direction: column;
    height: 100vh;
}

.calendar-header {
    display: flex;
    justify-content: space-between;
    align-items: center;
    padding: 12px 20px;
    border-bottom: 1px solid var(--border);
    background: var(--background);
}

.calendar-nav {
    display: flex;
    align-items: center;
    gap: 16px;
}

.nav-btn {
    background: transparent;
    border: 1px solid var(--border);
    color: var(--dark);
    width: 32px;
    height: 32px;
    border-radius: 50%;
    cursor: pointer;
    font-size: 14px;
}

.nav-btn:hover { background: var(--accent); }

.calendar-title h1 {
    font-size: 20px;
    font-weight: 500;
}

.date-subtitle {
    font-size: 13px;
    color: var(--light-text);
}

.view-toggle {
    display: flex;
    gap: 4px;
    background: var(--accent);
    padding: 4px;
    border-radius: 8px;
}

.view-btn {
    background: transparent;
    border: none;
    padding: 6px 16px;
    border-radius: 6px;
    font-size: 13px;
    cursor: pointer;
    color: var(--dark);
}

.view-btn.active {
    background: var(--background);
    box-shadow: 0 1px 3px rgba(0,0,0,0.1);
}

.calendar-body {
    flex: 1;
    display: flex;
    overflow-y: auto;
}

.time-gutter {
    width: 60px;
    flex-shrink: 0;
    border-right: 1px solid var(--border);
}

.time-label {
    height: 60px;
    padding: 0 8px;
    font-size: 10px;
    color: var(--light-text);
    text-align: right;
}

.time-label.header { height: 50px; }

.events-track {
    flex: 1;
    position: relative;
}

.hour-lines {
    position: absolute;
    inset: 0;
}

.hour-line {
    height: 60px;
    border-bottom: 1px solid var(--border);
    cursor: pointer;
}

.hour-line:hover { background: rgba(66, 133, 244, 0.05); }

.events-layer {
    position: absolute;
    inset: 0;
    padding: 0 8px;
    pointer-events: none;
}

.events-layer .calendar-event { pointer-events: auto; }

.click-layer {
    position: absolute;
    inset: 0;
    z-index: 1;
}

.calendar-event {
    position: absolute;
    left: 4px;
    right: 4px;
    border-radius: 4px;
    padding: 4px 8px;
    color: white;
    cursor: pointer;
    overflow: hidden;
    font-size: 12px;
    z-index: 2;
}

.calendar-event:hover {
    filter: brightness(1.1);
    box-shadow: 0 2px 8px rgba(0,0,0,0.2);
}

.event-time { font-size: 10px; opacity: 0.9; }
.event-title { font-weight: 500; line-height: 1.2; }
.event-location { font-size: 10px; opacity: 0.8; margin-top: 2px; }

.all-day-banner {
    display: flex;
    gap: 4px;
    padding: 4px 8px;
    background: var(--accent);
    border-bottom: 1px solid var(--border);
    flex-wrap: wrap;
}

.all-day-event {
    background: #9C27B0;
    color: white;
    padding: 2px 8px;
    border-radius: 4px;
    font-size: 11px;
}

/* Week View */
.week-view { display: flex; }

.day-column {
    flex: 1;
    border-right: 1px solid var(--border);
    position: relative;
}

.day-column.today { background: rgba(66, 133, 244, 0.03); }

.day-header {
    height: 50px;
    display: flex;
    flex-direction: column;
    align-items: center;
    justify-content: center;
    border-bottom: 1px solid var(--border);
}

.day-name { font-size: 11px; color: var(--light-text); }
.day-num { font-size: 20px; font-weight: 500; }
.day-num.current {
    background: var(--primary);
    color: white;
    width: 28px;
    height: 28px;
    border-radius: 50%;
    display: flex;
    align-items: center;
    justify-content: center;
}

.day-events {
    position: relative;
    height: calc(16 * 60px);
}

.calendar-event.compact {
    padding: 2px 4px;
    font-size: 10px;
}

.calendar-event.compact .event-title {
    white-space: nowrap;
    overflow: hidden;
    text-overflow: ellipsis;
}

/* Month View */
.month-view {
    flex-direction: column;
    padding: 16px;
}

.month-header {
    display: grid;
    grid-template-columns: repeat(7, 1fr);
    border-bottom: 1px solid var(--border);
    padding-bottom: 8px;
}

.weekday-label {
    text-align: center;
    font-size: 11px;
    font-weight: 500;
    color: var(--light-text);
}

.month-grid {
    display: grid;
    grid-template-columns: repeat(7, 1fr);
    flex: 1;
}

.day-cell {
    min-height: 80px;
    border: 1px solid var(--border);
    border-top: none;
    border-left: none;
    padding: 4px;
    cursor: pointer;
}

.day-cell:hover { background: var(--accent); }
.day-cell.today { background: rgba(66, 133, 244, 0.05); }
.day-cell.empty { background: var(--accent); opacity: 0.5; }

.day-number {
    font-size: 14px;
    font-weight: 500;
    margin-bottom: 4px;
}

.day-number.current {
    background: var(--primary);
    color: white;
    width: 24px;
    height: 24px;
    border-radius: 50%;
    display: flex;
    align-items: center;
    justify-content: center;
}

.day-events-mini {
    display: flex;
    flex-wrap: wrap;
    gap: 2px;
}

.event-dot {
    width: 6px;
    height: 6px;
    border-radius: 50%;
}

.more-events {
    font-size: 10px;
    color: var(--light-text);
}

.calendar-footer {
    padding: 8px 16px;
    border-top: 1px solid var(--border);
    text-align: center;
}

.shortcut-hint {
    font-size: 11px;
    color: var(--light-text);
}
`

const dialogStyles = `
.event-dialog {
    position: fixed;
    inset: 0;
    background: rgba(0,0,0,0.5);
    display: flex;
    align-items: center;
    justify-content: center;
    z-index: 100;
}

.event-dialog.hidden { display: none; }

.dialog-content {
    background: var(--background);
    border-radius: 12px;
    width: 400px;
    box-shadow: 0 8px 32px rgba(0,0,0,0.3);
}

.dialog-header {
    display: flex;
    justify-content: space-between;
    align-items: center;
    padding: 16px 20px;
    border-bottom: 1px solid var(--border);
}

.dialog-header h2 {
    font-size: 18px;
    font-weight: 500;
}

.close-btn {
    background: none;
    border: none;
    font-size: 24px;
    cursor: pointer;
    color: var(--light-text);
}

.dialog-body { padding: 20px; }

.form-group {
    margin-bottom: 16px;
}

.form-group label {
    display: block;
    font-size: 12px;
    font-weight: 500;
    color: var(--light-text);
    margin-bottom: 6px;
}

.form-group input {
    width: 100%;
    padding: 10px 12px;
    border: 1px solid var(--border);
    border-radius: 6px;
    font-size: 14px;
    background: var(--background);
    color: var(--dark);
}

.form-group input:focus {
    outline: none;
    border-color: var(--primary);
}

.time-inputs {
    display: flex;
    align-items: center;
    gap: 8px;
}

.time-inputs input { width: auto; flex: 1; }
.time-inputs span { color: var(--light-text); }

.dialog-footer {
    display: flex;
    justify-content: flex-end;
    gap: 8px;
    padding: 16px 20px;
    border-top: 1px solid var(--border);
}

.btn-cancel, .btn-create {
    padding: 8px 16px;
    border-radius: 6px;
    font-size: 14px;
    cursor: pointer;
}

.btn-cancel {
    background: transparent;
    border: 1px solid var(--border);
    color: var(--dark);
}

.btn-create {
    background: var(--primary);
    border: none;
    color: white;
}

.btn-create:hover { filter: brightness(1.1); }
`

const interactionScript = `
let selectedHour = null;
let selectedDate = null;

function handleTimeClick(e) {
    const rect = e.currentTarget.getBoundingClientRect();
    const y = e.clientY - rect.top;
    const hour = Math.floor(y / 60);
    selectedHour = hour;

    document.getElementById('eventStart').value = hour.toString().padStart(2, '0') + ':00';
    document.getElementById('eventEnd').value = (hour + 1).toString().padStart(2, '0') + ':00';

    showDialog();
}

function selectEvent(title) {
    alert('Event: ' + title);
}

function selectDate(day) {
    selectedDate = day;
    document.getElementById('eventStart').value = '09:00';
    document.getElementById('eventEnd').value = '10:00';
    showDialog();
}

function showDialog() {
    document.getElementById('eventDialog').classList.remove('hidden');
    document.getElementById('eventTitle').focus();
}

function closeDialog() {
    document.getElementById('eventDialog').classList.add('hidden');
    document.getElementById('eventTitle').value = '';
    document.getElementById('eventLocation').value = '';
}

function createEvent() {
    const title = document.getElementById('eventTitle').value;
    const start = document.getElementById('eventStart').value;
    const end = document.getElementById('eventEnd').value;
    const location = document.getElementById('eventLocation').value;

    if (!title) {
        alert('Please enter an event title');
        return;
    }

    if (window.webkit && window.webkit.messageHandlers && window.webkit.messageHandlers.createEvent) {
        window.webkit.messageHandlers.createEvent.postMessage({
            title: title,
            start: start,
            end: end,
            location: location
        });
    } else {
        alert('Event created: ' + title + ' at ' + start + ' - ' + end);
    }

    closeDialog();
}

function switchView(view) {
    if (window.webkit && window.webkit.messageHandlers && window.webkit.messageHandlers.switchView) {
        window.webkit.messageHandlers.switchView.postMessage(view);
    } else {
        alert('Switch to ' + view + ' view - requires app integration');
    }
}

function navigate(direction) {
    if (window.webkit && window.webkit.messageHandlers && window.webkit.messageHandlers.navigate) {
        window.webkit.messageHandlers.navigate.postMessage(direction);
    }
}

document.addEventListener('keydown', function(e) {
    if (e.key === 'Escape') {
        closeDialog();
    }
});
`
