package scaffold

// Static template content for the Quran Reels project skeleton.
// These are configuration-as-data for downstream tools (git, npm, tsc);
// the scaffolder itself never parses them.

const rootGitignore = `# Dependencies
node_modules/

# Build output
dist/
build/

# Environment
.env
.env.local

# Generated media
output/
*.mp4
*.mp3

# Logs
logs/
*.log
npm-debug.log*

# Editor
.vscode/
.idea/
.DS_Store
`

const serverGitignore = `node_modules/
dist/
.env
output/
temp/
*.mp4
*.mp3
`

const clientGitignore = `node_modules/
dist/
.env.local
*.local
`

const rootReadme = `# Quran Reels Generator

Automated pipeline that turns Quran recitations into short vertical
video reels: it fetches ayah audio and translation text, renders
animated verse frames on a canvas, and encodes the result into a
shareable video.

## Structure

- ` + "`server/`" + ` — rendering and encoding backend (Express, fluent-ffmpeg, canvas)
- ` + "`client/`" + ` — web frontend for composing and previewing reels
- ` + "`docs/`" + ` — architecture and pipeline notes

## Getting started

` + "```sh" + `
cd server && npm install && npm run dev
cd client && npm install && npm run dev
` + "```" + `

See docs/PIPELINE.md for how a reel moves through the system.
`

const architectureDoc = `# Architecture

Two deployables:

- **server** — an Express API that owns the generation pipeline.
  Audio and translations are fetched over HTTP (axios), verse frames
  are drawn with node-canvas, and ffmpeg (via fluent-ffmpeg) muxes
  frames and audio into the final video.
- **client** — a React app that lets the user pick a surah/ayah range,
  choose a reciter and theme, and preview the rendered reel.

The client talks to the server over a small JSON API; generated videos
land in server/output/ and are excluded from version control.
`

const pipelineDoc = `# Pipeline

1. Fetch ayah audio for the selected reciter.
2. Fetch verse text and translation.
3. Render animated verse frames on a canvas timed to the audio.
4. Encode frames + audio into a vertical 1080x1920 video.
5. Return the video path to the client for preview and download.
`

const serverPackageJSON = `{
  "name": "quran-reels-server",
  "version": "0.1.0",
  "description": "Rendering and encoding backend for the Quran Reels generator",
  "main": "dist/index.js",
  "scripts": {
    "build": "tsc",
    "start": "node dist/index.js",
    "dev": "ts-node src/index.ts"
  },
  "dependencies": {
    "express": "^4.19.2",
    "cors": "^2.8.5",
    "fluent-ffmpeg": "^2.1.3",
    "canvas": "^2.11.2",
    "axios": "^1.7.2"
  },
  "devDependencies": {
    "typescript": "^5.4.5",
    "ts-node": "^10.9.2",
    "@types/express": "^4.17.21",
    "@types/cors": "^2.8.17",
    "@types/fluent-ffmpeg": "^2.1.24",
    "@types/node": "^20.12.12"
  }
}
`

const serverTsconfigJSON = `{
  "compilerOptions": {
    "target": "ES2020",
    "module": "commonjs",
    "rootDir": "src",
    "outDir": "dist",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "forceConsistentCasingInFileNames": true
  },
  "include": ["src"]
}
`

const serverIndexTS = `import express from "express";
import cors from "cors";

const app = express();
app.use(cors());
app.use(express.json());

app.get("/health", (_req, res) => {
  res.json({ status: "ok" });
});

const port = process.env.PORT ?? 4000;
app.listen(port, () => {
  console.log(` + "`quran-reels server listening on ${port}`" + `);
});
`

const clientPackageJSON = `{
  "name": "quran-reels-client",
  "private": true,
  "version": "0.1.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc && vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.3.1",
    "react-dom": "^18.3.1",
    "axios": "^1.7.2"
  },
  "devDependencies": {
    "typescript": "^5.4.5",
    "vite": "^5.2.11",
    "@vitejs/plugin-react": "^4.2.1",
    "@types/react": "^18.3.2",
    "@types/react-dom": "^18.3.0"
  }
}
`

const clientTsconfigJSON = `{
  "compilerOptions": {
    "target": "ES2020",
    "module": "ESNext",
    "moduleResolution": "bundler",
    "jsx": "react-jsx",
    "strict": true,
    "skipLibCheck": true,
    "isolatedModules": true,
    "noEmit": true
  },
  "include": ["src"]
}
`

const clientMainTSX = `import React from "react";
import ReactDOM from "react-dom/client";

function App() {
  return <h1>Quran Reels</h1>;
}

ReactDOM.createRoot(document.getElementById("root")!).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>
);
`

// DefaultLayout returns the fixed skeleton rooted at the given project
// directory: the server/client/docs fork plus every template file.
func DefaultLayout(root string) Layout {
	return Layout{
		Root: root,
		Dirs: []string{
			"server",
			"server/src",
			"client",
			"client/src",
			"docs",
		},
		Files: []File{
			{Path: ".gitignore", Content: rootGitignore},
			{Path: "README.md", Content: rootReadme},
			{Path: "docs/ARCHITECTURE.md", Content: architectureDoc},
			{Path: "docs/PIPELINE.md", Content: pipelineDoc},
			{Path: "server/.gitignore", Content: serverGitignore},
			{Path: "server/package.json", Content: serverPackageJSON},
			{Path: "server/tsconfig.json", Content: serverTsconfigJSON},
			{Path: "server/src/index.ts", Content: serverIndexTS},
			{Path: "client/.gitignore", Content: clientGitignore},
			{Path: "client/package.json", Content: clientPackageJSON},
			{Path: "client/tsconfig.json", Content: clientTsconfigJSON},
			{Path: "client/src/main.tsx", Content: clientMainTSX},
		},
	}
}
