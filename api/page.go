package api

import "net/http"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>QR Code Generator</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #0a0a0a;
    color: #e0e0e0;
    display: flex;
    justify-content: center;
    align-items: center;
    min-height: 100vh;
  }
  .card {
    background: #1a1a1a;
    border: 1px solid #333;
    border-radius: 16px;
    padding: 48px;
    text-align: center;
    max-width: 460px;
    width: 100%;
  }
  h1 { font-size: 20px; font-weight: 600; margin-bottom: 8px; }
  .subtitle { color: #888; font-size: 14px; margin-bottom: 24px; }
  #link {
    width: 100%;
    padding: 10px 12px;
    border-radius: 8px;
    border: 1px solid #333;
    background: #0a0a0a;
    color: #e0e0e0;
    font-size: 14px;
    margin-bottom: 16px;
  }
  .options {
    display: flex;
    justify-content: center;
    gap: 16px;
    margin-bottom: 16px;
    font-size: 13px;
    color: #888;
  }
  .options label { display: flex; align-items: center; gap: 6px; }
  select {
    background: #0a0a0a;
    color: #e0e0e0;
    border: 1px solid #333;
    border-radius: 6px;
    padding: 4px 8px;
  }
  button {
    background: #2563eb;
    color: #fff;
    border: none;
    border-radius: 8px;
    padding: 10px 20px;
    font-size: 14px;
    cursor: pointer;
    margin: 4px;
  }
  button:hover { background: #1d4ed8; }
  #qr-container {
    display: none;
    margin-top: 24px;
  }
  #qr-container img {
    background: #fff;
    border-radius: 12px;
    padding: 10px;
    max-width: 300px;
    width: 100%;
  }
  .actions { margin-top: 12px; }
  .actions a { color: #60a5fa; font-size: 13px; margin: 0 8px; }
  #copied-msg {
    display: none;
    color: #4ade80;
    font-size: 13px;
    margin-top: 8px;
  }
</style>
</head>
<body>
<div class="card">
  <h1>QR Code Generator</h1>
  <p class="subtitle">Paste a link and get a scannable QR code</p>
  <input id="link" type="text" placeholder="https://example.com" autofocus>
  <div class="options">
    <label>Fill <input id="fill-color" type="color" value="#000000"></label>
    <label>Background <input id="back-color" type="color" value="#ffffff"></label>
    <label>Size
      <select id="size">
        <option value="sm">Small</option>
        <option value="md" selected>Medium</option>
        <option value="lg">Large</option>
      </select>
    </label>
  </div>
  <button id="generate-btn">Generate</button>
  <div id="qr-container">
    <img id="qr-img" alt="QR Code">
    <div class="actions">
      <button id="copy-btn">Copy QR Code</button>
      <br>
      <a id="download-png" href="#" download>Download PNG</a>
      <a id="download-pdf" href="#" download>Download PDF</a>
    </div>
    <div id="copied-msg">Copied!</div>
  </div>
</div>
<script>
(function() {
  var linkInput = document.getElementById('link');
  var container = document.getElementById('qr-container');
  var qrImg = document.getElementById('qr-img');
  var copiedMsg = document.getElementById('copied-msg');
  var pngLink = document.getElementById('download-png');
  var pdfLink = document.getElementById('download-pdf');

  function generate() {
    var link = linkInput.value.trim();
    if (!link) {
      alert('Please enter a link first.');
      return;
    }

    var params = new URLSearchParams({
      link: link,
      fill_color: document.getElementById('fill-color').value,
      back_color: document.getElementById('back-color').value,
      size: document.getElementById('size').value
    });

    fetch('/generate_qr?' + params.toString())
      .then(function(r) {
        if (!r.ok) { throw new Error('request failed: ' + r.status); }
        return r.json();
      })
      .then(function(data) {
        if (!data.qr_code) { throw new Error('malformed response'); }
        qrImg.setAttribute('src', 'data:image/png;base64,' + data.qr_code);
        if (data.id) {
          pngLink.setAttribute('href', '/download_png?id=' + data.id);
          pdfLink.setAttribute('href', '/download_pdf?id=' + data.id);
        }
        container.style.display = 'block';
      })
      .catch(function(err) {
        alert('Could not generate QR code: ' + err.message);
      });
  }

  function copyImage() {
    fetch(qrImg.getAttribute('src'))
      .then(function(r) { return r.blob(); })
      .then(function(blob) {
        return navigator.clipboard.write([
          new ClipboardItem({ 'image/png': blob })
        ]);
      })
      .then(function() {
        copiedMsg.style.display = 'block';
        setTimeout(function() { copiedMsg.style.display = 'none'; }, 2000);
      })
      .catch(function(err) {
        alert('Could not copy image: ' + err.message);
      });
  }

  document.getElementById('generate-btn').addEventListener('click', generate);
  document.getElementById('copy-btn').addEventListener('click', copyImage);
  linkInput.addEventListener('keydown', function(e) {
    if (e.key === 'Enter') generate();
  });
})();
</script>
</body>
</html>`
