package ui

import "net/http"

// Stylesheet serves the app stylesheet.
func (h *Handler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write([]byte(appCSS))
}

const appCSS = `:root {
  color-scheme: dark;
  --bg: #0b1020;
  --card: #141a31;
  --line: rgba(255, 255, 255, 0.12);
  --text: #e8ecf8;
  --muted: #9aa3bd;
  --accent: #2e6bff;
  --ok: #37c978;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: 'Segoe UI', Roboto, Arial, sans-serif;
}

.layout { max-width: 960px; margin: 0 auto; padding: 20px 16px 64px; }

.topbar { display: flex; align-items: center; justify-content: space-between; margin-bottom: 14px; }

.avatar {
  display: inline-flex; align-items: center; justify-content: center;
  width: 38px; height: 38px; border-radius: 50%;
  background: var(--accent); font-weight: 700; font-size: 14px;
}

.nav { display: flex; gap: 6px; margin-bottom: 20px; }
.nav-tab {
  padding: 8px 14px; border-radius: 10px;
  color: var(--muted); text-decoration: none; font-weight: 600;
}
.nav-tab.is-active { background: var(--card); color: var(--text); }

.row { display: flex; align-items: center; gap: 10px; }
.row.spread { justify-content: space-between; }
.row.end { justify-content: flex-end; }

.search-row { display: flex; gap: 10px; margin-bottom: 16px; }
.search-input {
  flex: 1; padding: 10px 12px; border-radius: 10px;
  border: 1px solid var(--line); background: var(--card); color: var(--text);
}

.primary-btn {
  padding: 10px 14px; border-radius: 10px; border: 0; cursor: pointer;
  background: var(--accent); color: #fff; font-weight: 600; text-decoration: none;
  display: inline-block;
}
.ghost-btn {
  padding: 8px 12px; border-radius: 10px; cursor: pointer;
  border: 1px solid var(--line); background: transparent; color: var(--text);
  text-decoration: none; display: inline-block;
}
.ghost-btn.danger { color: #ff7a7a; border-color: rgba(255, 122, 122, 0.4); }
.expand-btn, .plus-btn {
  padding: 6px 10px; border-radius: 8px; cursor: pointer;
  border: 1px solid var(--line); background: transparent; color: var(--text);
  text-decoration: none;
}

.group-list { display: grid; gap: 14px; }
.group-card { background: var(--card); border: 1px solid var(--line); border-radius: 14px; padding: 14px; }
.group-header { display: flex; align-items: center; gap: 12px; }
.group-title { font-weight: 700; }
.group-date { color: var(--muted); font-size: 13px; }
.group-actions { margin-left: auto; display: flex; gap: 8px; align-items: center; }
.group-dot { width: 12px; height: 12px; border-radius: 50%; display: inline-block; flex: none; }

.post-today { display: inline-flex; align-items: center; gap: 6px; color: var(--muted); font-size: 13px; }
.post-today .dot { width: 8px; height: 8px; border-radius: 50%; background: var(--muted); display: inline-block; }
.post-today.is-done { color: var(--ok); }
.post-today.is-done .dot { background: var(--ok); }

.group-content { margin-top: 12px; display: grid; gap: 12px; }
.group-content.hidden { display: none; }
.post-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(150px, 1fr)); gap: 10px; }
.post-card { border: 1px solid var(--line); border-radius: 12px; overflow: hidden; }
.post-thumb { width: 100%; display: block; aspect-ratio: 4 / 3; object-fit: cover; }
.post-meta { display: flex; justify-content: space-between; padding: 6px 8px; font-size: 13px; }
.post-meta .me { color: var(--accent); font-weight: 700; }
.post-meta .icon { color: var(--muted); text-decoration: none; }
.group-details { color: var(--muted); font-size: 14px; display: grid; gap: 6px; }

.chip {
  display: inline-block; padding: 4px 10px; border-radius: 999px;
  border: 1px solid var(--line); font-size: 13px; margin: 2px;
}

.grid { display: grid; gap: 12px; }
.grid.cols-3 { grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); }
.group-tile { background: var(--card); border: 1px solid var(--line); border-radius: 14px; padding: 14px; display: grid; gap: 8px; }
.tile-head { display: flex; gap: 10px; align-items: flex-start; }
.tile-name { font-weight: 600; }
.tile-actions { margin-left: auto; display: flex; gap: 6px; }

.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 12px; margin-bottom: 18px; }
.stat-card { background: var(--card); border: 1px solid var(--line); border-radius: 14px; padding: 14px; }
.stat-value { font-size: 28px; font-weight: 700; }
.progress-bar { height: 8px; border-radius: 999px; background: rgba(255, 255, 255, 0.08); margin-top: 8px; overflow: hidden; }
.progress-bar span { display: block; height: 100%; background: var(--accent); }

.section-title { font-weight: 700; margin: 18px 0 10px; }
.muted { color: var(--muted); }
.small { font-size: 13px; }
.page-title { margin: 0 0 12px; }

.modal-root { position: fixed; inset: 0; display: flex; align-items: center; justify-content: center; z-index: 50; }
.modal-backdrop { position: absolute; inset: 0; background: rgba(5, 8, 18, 0.7); }
.modal {
  position: relative; width: min(560px, calc(100vw - 32px));
  max-height: calc(100vh - 64px); overflow-y: auto;
  background: var(--card); border: 1px solid var(--line); border-radius: 16px; padding: 16px;
}
.modal header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 12px; }
.modal header h3 { margin: 0; }
.modal .close { color: var(--muted); text-decoration: none; font-size: 18px; }
.modal .content { display: grid; gap: 12px; }

.stack-form { display: grid; gap: 10px; }
.stack-form label { display: grid; gap: 6px; font-size: 14px; color: var(--muted); }
.stack-form input[type='text'], .stack-form textarea {
  padding: 10px 12px; border-radius: 10px; border: 1px solid var(--line);
  background: var(--bg); color: var(--text); font: inherit;
}
.stack-form input[type='color'] { height: 44px; padding: 4px; border-radius: 10px; border: 1px solid var(--line); background: var(--bg); }
.post-preview { width: 240px; border-radius: 12px; border: 1px solid var(--line); }
.post-full { width: 100%; border-radius: 12px; display: block; }
`
